package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/goliatone/go-combobox/pkg/logging"
	"github.com/goliatone/go-combobox/pkg/orchestrator"
	"github.com/goliatone/go-combobox/pkg/render"
	"github.com/goliatone/go-combobox/pkg/renderers/props"
	"github.com/goliatone/go-combobox/pkg/renderers/tui"
	"github.com/goliatone/go-combobox/pkg/renderers/vanilla"
)

func main() {
	dir := flag.String("dir", "controls", "directory holding control definitions and their sources")
	controlID := flag.String("control", "", "control id to render (lists controls if empty)")
	renderer := flag.String("renderer", "", "renderer to use: vanilla, props or tui (definition default if empty)")
	output := flag.String("output", "", "output file (stdout if empty)")
	island := flag.Bool("island", false, "wrap props output in a script element")
	format := flag.String("format", "json", "tui output format: json or pretty")
	verbose := flag.Bool("verbose", false, "log diagnostics to stderr")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := logging.Nop()
	if *verbose {
		logger = logging.Slog(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	term, err := tui.New(tui.WithOutputFormat(tui.OutputFormat(*format)))
	if err != nil {
		log.Fatalf("Failed to configure terminal renderer: %v", err)
	}
	html, err := vanilla.New()
	if err != nil {
		log.Fatalf("Failed to configure HTML renderer: %v", err)
	}
	registry := render.NewRegistry()
	registry.MustRegister(html)
	registry.MustRegister(props.New(props.WithIsland(*island), props.WithIndent("  ")))
	registry.MustRegister(term)

	gen := orchestrator.New(
		orchestrator.WithDefinitionsFS(os.DirFS(*dir)),
		orchestrator.WithRegistry(registry),
		orchestrator.WithLogger(logger),
	)
	store, err := gen.Store()
	if err != nil {
		log.Fatalf("Failed to load definitions: %v", err)
	}

	if strings.TrimSpace(*controlID) == "" {
		for _, id := range store.IDs() {
			fmt.Println(id)
		}
		return
	}

	req := orchestrator.Request{Control: *controlID, Renderer: *renderer}
	def, err := gen.Definition(req)
	if err != nil {
		log.Fatalf("Failed to resolve control: %v", err)
	}

	var out []byte
	if req.Renderer == term.Name() || (req.Renderer == "" && def.Renderer == term.Name()) {
		c, err := gen.Build(ctx, def)
		if err != nil {
			log.Fatalf("Failed to build control: %v", err)
		}
		out, err = term.Run(ctx, c, orchestrator.TextOf(def))
		c.Close()
		if err != nil {
			log.Fatalf("Session ended: %v", err)
		}
	} else {
		out, err = gen.Generate(ctx, req)
		if err != nil {
			log.Fatalf("Failed to render control: %v", err)
		}
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Control written to %s\n", *output)
		return
	}
	fmt.Println(string(out))
}
