package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

type bufferCloser struct {
	sync.Mutex
	bytes.Buffer
	closed bool
}

func (b *bufferCloser) Write(p []byte) (int, error) {
	b.Lock()
	defer b.Unlock()
	return b.Buffer.Write(p)
}

func (b *bufferCloser) Close() error {
	b.Lock()
	defer b.Unlock()
	b.closed = true
	return nil
}

func TestLoggerLevels(t *testing.T) {
	backend := NewBackendWithFlags(0)
	all := &bufferCloser{}
	warnings := &bufferCloser{}
	if err := backend.AddLogWriter(all, LevelTrace); err != nil {
		t.Fatalf("AddLogWriter: %+v", err)
	}
	if err := backend.AddLogWriter(warnings, LevelWarn); err != nil {
		t.Fatalf("AddLogWriter: %+v", err)
	}
	if err := backend.Run(); err != nil {
		t.Fatalf("Run: %+v", err)
	}

	log := backend.Logger("TEST")
	log.Infof("dropped while off")
	log.SetLevel(LevelDebug)
	log.Tracef("dropped below level")
	log.Debugf("derived %d keys", 3)
	log.Warnf("something odd")

	backend.Close()

	if !all.closed || !warnings.closed {
		t.Fatalf("Close did not close the writers")
	}
	allOutput := all.String()
	if strings.Contains(allOutput, "dropped") {
		t.Fatalf("unexpected entry in output: %q", allOutput)
	}
	if !strings.Contains(allOutput, "[DBG] TEST: derived 3 keys\n") {
		t.Fatalf("missing debug entry in output: %q", allOutput)
	}
	if strings.Count(warnings.String(), "\n") != 1 || !strings.Contains(warnings.String(), "[WRN] TEST: something odd") {
		t.Fatalf("unexpected warnings output: %q", warnings.String())
	}

	// Writing after Close must not panic.
	log.Warnf("after close")
}

func TestBackendRejectsWritersWhileRunning(t *testing.T) {
	backend := NewBackendWithFlags(0)
	if err := backend.Run(); err != nil {
		t.Fatalf("Run: %+v", err)
	}
	defer backend.Close()

	if err := backend.AddLogWriter(&bufferCloser{}, LevelInfo); err == nil {
		t.Fatalf("AddLogWriter succeeded on a running backend")
	}
	if err := backend.Run(); err == nil {
		t.Fatalf("second Run succeeded")
	}
}

func TestLevelUnmarshalFlag(t *testing.T) {
	var level Level
	if err := level.UnmarshalFlag("trace"); err != nil {
		t.Fatalf("UnmarshalFlag: %+v", err)
	}
	if level != LevelTrace {
		t.Fatalf("expected %s but got %s", LevelTrace, level)
	}
	if err := level.UnmarshalFlag("loud"); err == nil {
		t.Fatalf("UnmarshalFlag accepted an invalid level")
	}
}

func TestParseAndSetLogLevels(t *testing.T) {
	first := RegisterSubSystem("TSTA")
	second := RegisterSubSystem("TSTB")

	if err := ParseAndSetLogLevels("debug"); err != nil {
		t.Fatalf("ParseAndSetLogLevels: %+v", err)
	}
	if first.Level() != LevelDebug || second.Level() != LevelDebug {
		t.Fatalf("expected both subsystems at debug")
	}

	if err := ParseAndSetLogLevels("TSTA=warn,TSTB=trace"); err != nil {
		t.Fatalf("ParseAndSetLogLevels: %+v", err)
	}
	if first.Level() != LevelWarn || second.Level() != LevelTrace {
		t.Fatalf("unexpected levels %s and %s", first.Level(), second.Level())
	}

	if err := ParseAndSetLogLevels("NOPE=info"); err == nil {
		t.Fatalf("ParseAndSetLogLevels accepted an unknown subsystem")
	}
	if RegisterSubSystem("TSTA") != first {
		t.Fatalf("RegisterSubSystem returned a different logger for the same subsystem")
	}
}
