package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("pasted") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("pasted") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("pasted") }, true},
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("dropping link") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestNewLoggerDebugPrefix(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.DebugLevel).Debug("starting")
	if !strings.Contains(buf.String(), appName) {
		t.Errorf("debug output %q lacks the %s prefix", buf.String(), appName)
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.now = func() time.Time { return prog.start.Add(412 * time.Millisecond) }

	prog.done("Rendered Wood", "nodes", 5)

	out := buf.String()
	for _, want := range []string{"Rendered Wood", "nodes=5", "elapsed=412ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	if got := loggerFromContext(withLogger(context.Background(), custom)); got != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}
}
