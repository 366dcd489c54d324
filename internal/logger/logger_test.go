package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

func resetLogger() {
	SetVerbose(false)
	SetOutput(os.Stderr)
	now = time.Now
}

func TestSetVerbose(t *testing.T) {
	defer resetLogger()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false after SetVerbose(false)")
	}
}

func TestLevels_WhenVerbose(t *testing.T) {
	defer resetLogger()

	tests := []struct {
		name   string
		log    func()
		prefix string
	}{
		{"debug", func() { Debug("loaded %d entries", 3) }, "[DEBUG] loaded 3 entries\n"},
		{"info", func() { Info("index %s", "a.json") }, "[INFO] index a.json\n"},
		{"warn", func() { Warn("cannot write %q", "out.txt") }, "[WARN] cannot write \"out.txt\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetOutput(&buf)
			SetVerbose(true)

			tt.log()

			if got := buf.String(); got != tt.prefix {
				t.Errorf("got %q, want %q", got, tt.prefix)
			}
		})
	}
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("Hidden")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestSection_WhenVerbose(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Search Execution")

	if !strings.Contains(buf.String(), "=== Search Execution ===") {
		t.Errorf("expected section header, got %q", buf.String())
	}
}

func TestTimed(t *testing.T) {
	defer resetLogger()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	now = func() time.Time {
		calls++
		if calls == 1 {
			return start
		}
		return start.Add(250 * time.Millisecond)
	}

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	stop := Timed("load index")
	elapsed := stop()

	if elapsed != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %s", elapsed)
	}
	if !strings.Contains(buf.String(), "[DEBUG] load index took 250ms") {
		t.Errorf("unexpected log output %q", buf.String())
	}
}

func TestTimed_MeasuresWhenNotVerbose(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)

	stop := Timed("search")
	elapsed := stop()

	if elapsed < 0 {
		t.Errorf("expected non-negative duration, got %s", elapsed)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
