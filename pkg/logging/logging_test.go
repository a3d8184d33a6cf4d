package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestWarnAndDebugReachLogger(t *testing.T) {
	var events []Event
	logger := LoggerFunc(func(e Event) { events = append(events, e) })

	Warn(logger, "aria", "missing label", "id", "cb-1")
	Debug(logger, "state", "transition")
	Warn(nil, "aria", "dropped")

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Level != LevelWarn || events[0].Component != "aria" || len(events[0].Args) != 2 {
		t.Fatalf("unexpected warn event: %+v", events[0])
	}
	if events[1].Level != LevelDebug {
		t.Fatalf("unexpected debug event: %+v", events[1])
	}
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := Slog(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	Warn(logger, "layout", "measurement skipped", "reason", "unmounted")

	out := buf.String()
	for _, want := range []string{"level=WARN", "component=layout", "reason=unmounted", "measurement skipped"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}
