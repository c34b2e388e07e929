package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHelpersAreNilSafe(t *testing.T) {
	Debug(nil, "d")
	Info(nil, "i")
	Warn(nil, "w")
	Error(nil, "e", errors.New("boom"))
}

func TestHelpersWriteAtTheirLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Debug(logger, "coalesced")
	Info(logger, "loaded", FieldCount, 3)
	Warn(logger, "skipped")
	Error(logger, "failed", errors.New("boom"))
	Error(logger, "no cause", nil)

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG msg=coalesced",
		"level=INFO msg=loaded count=3",
		"level=WARN msg=skipped",
		"level=ERROR msg=failed error=boom",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, `msg="no cause" error`) {
		t.Fatalf("expected nil error to be omitted:\n%s", out)
	}
}
