package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/goliatone/go-combobox/pkg/collection"
	"github.com/goliatone/go-combobox/pkg/config"
	"github.com/goliatone/go-combobox/pkg/logging"
	"github.com/goliatone/go-combobox/pkg/orchestrator"
)

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [dirs...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint combo box definitions for accessibility and option problems.\n"); err != nil {
			panic(err)
		}
	}
	flag.Parse()

	dirs := flag.Args()
	if len(dirs) == 0 {
		dirs = []string{"controls"}
	}

	ctx := context.Background()
	var violations []violation
	for _, dir := range dirs {
		linted, err := lintDir(ctx, dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", dir, err)
			os.Exit(1)
		}
		violations = append(violations, linted...)
	}

	if len(violations) > 0 {
		sort.Slice(violations, func(i, j int) bool {
			if violations[i].file == violations[j].file {
				if violations[i].location == violations[j].location {
					return violations[i].message < violations[j].message
				}
				return violations[i].location < violations[j].location
			}
			return violations[i].file < violations[j].file
		})
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", v.file, v.location, v.message)
		}
		os.Exit(1)
	}
}

func lintDir(ctx context.Context, dir string) ([]violation, error) {
	var warnings []logging.Event
	collect := logging.LoggerFunc(func(event logging.Event) {
		if event.Level == logging.LevelWarn {
			warnings = append(warnings, event)
		}
	})

	gen := orchestrator.New(
		orchestrator.WithDefinitionsFS(os.DirFS(dir)),
		orchestrator.WithLogger(collect),
	)
	store, err := gen.Store()
	if err != nil {
		return nil, err
	}

	var result []violation
	for _, id := range store.IDs() {
		def, _ := store.Control(id)
		file := filepath.Join(dir, def.File)
		location := "controls." + id

		warnings = warnings[:0]
		c, err := gen.Build(ctx, def)
		if err != nil {
			result = append(result, violation{file: file, location: location, message: err.Error()})
			continue
		}
		snap := c.Snapshot()
		c.Close()

		result = append(result, lintDefinition(file, location, def, snap.Collection)...)
		for _, w := range warnings {
			result = append(result, violation{file: file, location: location, message: fmt.Sprintf("%s: %s %v", w.Component, w.Message, w.Args)})
		}
	}
	return result, nil
}

// lintDefinition reports option problems. Composition and default-key
// problems surface as warnings from the control itself.
func lintDefinition(file, location string, def config.Definition, col *collection.Collection) []violation {
	var result []violation
	add := func(message string) {
		result = append(result, violation{file: file, location: location, message: message})
	}

	if col.Len() == 0 && !def.Policy.AllowsEmptyCollection {
		add("no options and allowsEmptyCollection is off")
	}
	enabled := 0
	for _, opt := range col.Options() {
		if !opt.Disabled {
			enabled++
		}
	}
	if col.Len() > 0 && enabled == 0 {
		add("every option is disabled")
	}
	return result
}
