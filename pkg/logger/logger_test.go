package logger

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestInitNormalizesLevel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"debug", "debug"},
		{"WARN", "warn"},
		{"warning", "warn"},
		{"Error", "error"},
		{"fatal", "fatal"},
		{"  info  ", "info"},
		{"nonsense", "info"},
		{"", "info"},
	}
	for _, tc := range cases {
		Init(tc.in)
		if got := LevelString(); got != tc.want {
			t.Fatalf("Init(%q): LevelString() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// capture swaps the package output for a buffer for the duration of the test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := logger
	logger = log.New(&buf, "", 0)
	t.Cleanup(func() { logger = orig })
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t)

	Init("warn")
	Debugf("debug-msg")
	Infof("info-msg")
	Warnf("warn-msg")
	Errorf("error-msg")

	out := buf.String()
	for _, suppressed := range []string{"debug-msg", "info-msg"} {
		if strings.Contains(out, suppressed) {
			t.Fatalf("%s should be suppressed at warn level", suppressed)
		}
	}
	for _, kept := range []string{"warn-msg", "error-msg"} {
		if !strings.Contains(out, kept) {
			t.Fatalf("%s missing at warn level: %q", kept, out)
		}
	}
}

func TestPlainHelpersFollowLevel(t *testing.T) {
	buf := capture(t)

	// Info maps to the info level and is suppressed at warn
	Init("warn")
	Info("hello")
	if strings.Contains(buf.String(), "hello") {
		t.Fatalf("Info should be suppressed at warn level")
	}

	Init("info")
	buf.Reset()
	Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("Info expected at info level, got: %q", buf.String())
	}
	buf.Reset()
	Warn("careful")
	if !strings.Contains(buf.String(), "careful") {
		t.Fatalf("Warn expected at info level, got: %q", buf.String())
	}
}
