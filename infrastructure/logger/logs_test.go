package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

type bufferCloser struct {
	bytes.Buffer
	closed bool
}

func (b *bufferCloser) Close() error {
	b.closed = true
	return nil
}

func TestParseAndSetLogLevels(t *testing.T) {
	first := RegisterSubSystem("TST1")
	second := RegisterSubSystem("TST2")

	err := ParseAndSetLogLevels("debug")
	if err != nil {
		t.Fatalf("ParseAndSetLogLevels: unexpected error: %+v", err)
	}
	if first.Level() != LevelDebug || second.Level() != LevelDebug {
		t.Fatalf("expected both subsystems at debug, got %s and %s", first.Level(), second.Level())
	}

	err = ParseAndSetLogLevels("TST1=trace,TST2=error")
	if err != nil {
		t.Fatalf("ParseAndSetLogLevels: unexpected error: %+v", err)
	}
	if first.Level() != LevelTrace {
		t.Errorf("TST1: expected %s, got %s", LevelTrace, first.Level())
	}
	if second.Level() != LevelError {
		t.Errorf("TST2: expected %s, got %s", LevelError, second.Level())
	}

	tests := []string{
		"loud",
		"TST1=loud",
		"NOPE=info",
		"TST1=info,TST2",
	}
	for _, spec := range tests {
		if err := ParseAndSetLogLevels(spec); err == nil {
			t.Errorf("ParseAndSetLogLevels(%q): expected an error", spec)
		}
	}
}

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in       string
		expected Level
		ok       bool
	}{
		{"trc", LevelTrace, true},
		{"Debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{"wrn", LevelWarn, true},
		{"error", LevelError, true},
		{"crt", LevelCritical, true},
		{"off", LevelOff, true},
		{"chatty", LevelInfo, false},
	}
	for _, test := range tests {
		level, ok := LevelFromString(test.in)
		if level != test.expected || ok != test.ok {
			t.Errorf("LevelFromString(%q): got (%s, %t), want (%s, %t)",
				test.in, level, ok, test.expected, test.ok)
		}
	}
}

func TestBackendWritesByLevel(t *testing.T) {
	backend := NewBackendWithFlags(0)
	all := &bufferCloser{}
	warnings := &bufferCloser{}
	if err := backend.AddLogWriter(all, LevelTrace); err != nil {
		t.Fatalf("AddLogWriter: %+v", err)
	}
	if err := backend.AddLogWriter(warnings, LevelWarn); err != nil {
		t.Fatalf("AddLogWriter: %+v", err)
	}

	log := backend.Logger("TEST")
	log.SetLevel(LevelDebug)
	log.Infof("dropped before run")

	if err := backend.Run(); err != nil {
		t.Fatalf("Run: %+v", err)
	}
	for !backend.IsRunning() {
		time.Sleep(time.Millisecond)
	}
	if err := backend.AddLogWriter(&bufferCloser{}, LevelInfo); err == nil {
		t.Errorf("AddLogWriter: expected an error on a running backend")
	}

	log.Tracef("below level")
	log.Debugf("debug %d", 1)
	log.Warnf("warn %d", 2)
	backend.Close()

	if strings.Contains(all.String(), "dropped before run") || strings.Contains(all.String(), "below level") {
		t.Errorf("unexpected entries written: %q", all.String())
	}
	if !strings.Contains(all.String(), "[DBG] TEST: debug 1") || !strings.Contains(all.String(), "[WRN] TEST: warn 2") {
		t.Errorf("missing entries: %q", all.String())
	}
	if strings.Contains(warnings.String(), "debug 1") || !strings.Contains(warnings.String(), "warn 2") {
		t.Errorf("warning writer got %q", warnings.String())
	}
	if !all.closed || !warnings.closed {
		t.Errorf("Close did not close the writers")
	}
}
