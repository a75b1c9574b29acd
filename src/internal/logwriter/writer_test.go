package logwriter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	rlerrors "github.com/maksimkurb/runlog/src/internal/errors"
)

var lineRegexp = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \(\d{2,}:\d{2}:\d{2}\.\d{6}\) \[[IDWECV]\]: .*$`)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func readLines(t *testing.T, path string) []string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !bytes.HasSuffix(content, []byte("\n")) {
		t.Fatalf("Expected log file to end with a newline, got %q", content)
	}
	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
}

func newTestWriter(t *testing.T, clock *fakeClock, opts ...Option) (*Writer, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.log")
	opts = append([]Option{WithClock(clock.Now), WithConsole(io.Discard)}, opts...)
	w, err := New(path, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return w, path
}

func TestNew_TruncatesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	if err := os.WriteFile(path, []byte("old line 1\nold line 2\n"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	clock := newFakeClock()
	w, err := New(path, WithClock(clock.Now), WithConsole(io.Discard))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	lines := readLines(t, path)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line after construction, got %d: %q", len(lines), lines)
	}
	expected := "2024-05-01 10:00:00 (00:00:00.000000) [I]: Log Started."
	if lines[0] != expected {
		t.Errorf("First line = %q, want %q", lines[0], expected)
	}
	if w.Path() != path {
		t.Errorf("Path() = %q, want %q", w.Path(), path)
	}
	if !w.StartedAt().Equal(clock.Now()) {
		t.Errorf("StartedAt() = %v, want %v", w.StartedAt(), clock.Now())
	}
}

func TestNew_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.log")

	w, err := New(path, WithConsole(io.Discard))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected log file to exist: %v", err)
	}
}

func TestNew_RemoveFailure(t *testing.T) {
	notADir := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(notADir, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := New(filepath.Join(notADir, "test.log"), WithConsole(io.Discard))
	if err == nil {
		t.Fatal("Expected error when the previous log cannot be removed")
	}
	if !errors.Is(err, rlerrors.ErrFile) {
		t.Errorf("Expected file error, got %v", err)
	}
}

func TestNew_EmptyPath(t *testing.T) {
	_, err := New("", WithConsole(io.Discard))
	if !errors.Is(err, rlerrors.ErrConfig) {
		t.Errorf("Expected config error for empty path, got %v", err)
	}
}

func TestNew_InvalidHeaderTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	_, err := New(path, WithConsole(io.Discard), WithHeaderTemplate("{{timestamp"))
	if !errors.Is(err, rlerrors.ErrConfig) {
		t.Errorf("Expected config error for invalid template, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("Expected no log file to be created, stat error: %v", statErr)
	}
}

func TestRecord_HeaderFormat(t *testing.T) {
	clock := newFakeClock()
	w, path := newTestWriter(t, clock)

	clock.Advance(1500 * time.Millisecond)
	w.Warning("disk almost full")

	lines := readLines(t, path)
	expected := "2024-05-01 10:00:01 (00:00:01.500000) [W]: disk almost full"
	if lines[len(lines)-1] != expected {
		t.Errorf("Last line = %q, want %q", lines[len(lines)-1], expected)
	}
}

func TestRecord_ElapsedSincePreviousRecord(t *testing.T) {
	clock := newFakeClock()
	w, path := newTestWriter(t, clock)

	w.Info("first")
	clock.Advance(2 * time.Second)
	w.Info("second")
	clock.Advance(3*time.Second + 250*time.Millisecond)
	w.Info("third")

	lines := readLines(t, path)
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d: %q", len(lines), lines)
	}

	expected := []string{
		"2024-05-01 10:00:00 (00:00:00.000000) [I]: first",
		"2024-05-01 10:00:02 (00:00:02.000000) [I]: second",
		"2024-05-01 10:00:05 (00:00:03.250000) [I]: third",
	}
	for i, want := range expected {
		if lines[i+1] != want {
			t.Errorf("Line %d = %q, want %q", i+1, lines[i+1], want)
		}
	}
}

func TestRecord_BuffersUnreportedFragments(t *testing.T) {
	clock := newFakeClock()
	w, path := newTestWriter(t, clock)

	if err := w.Record(Debug, "one, ", false, true); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := w.Record(Debug, "two, ", false, true); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if got := w.Pending(); got != 2 {
		t.Errorf("Pending() = %d, want 2", got)
	}
	if lines := readLines(t, path); len(lines) != 1 {
		t.Fatalf("Expected unreported fragments not to be written, got %q", lines)
	}

	clock.Advance(time.Second)
	if err := w.Record(Debug, "three", true, true); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	lines := readLines(t, path)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), lines)
	}
	expected := "2024-05-01 10:00:01 (00:00:01.000000) [D]: one, two, three"
	if lines[1] != expected {
		t.Errorf("Line = %q, want %q", lines[1], expected)
	}
	if got := w.Pending(); got != 0 {
		t.Errorf("Pending() = %d after report, want 0", got)
	}
}

func TestRecord_LevelMethodsNoReport(t *testing.T) {
	clock := newFakeClock()
	w, path := newTestWriter(t, clock)

	w.Error("copy failed: ", NoReport())
	w.Error("permission denied")

	lines := readLines(t, path)
	expected := "2024-05-01 10:00:00 (00:00:00.000000) [E]: copy failed: permission denied"
	if lines[len(lines)-1] != expected {
		t.Errorf("Line = %q, want %q", lines[len(lines)-1], expected)
	}
}

func TestRecord_EmbeddedNewlines(t *testing.T) {
	clock := newFakeClock()
	w, path := newTestWriter(t, clock)

	w.Info("line one\nline two")

	lines := readLines(t, path)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), lines)
	}
	if !strings.HasSuffix(lines[1], "[I]: line one line two") {
		t.Errorf("Line = %q", lines[1])
	}
}

func TestRecord_ClockGoingBackwards(t *testing.T) {
	clock := newFakeClock()
	w, path := newTestWriter(t, clock)

	clock.Advance(-time.Minute)
	w.Info("skewed")

	lines := readLines(t, path)
	expected := "2024-05-01 10:00:00 (00:00:00.000000) [I]: skewed"
	if lines[1] != expected {
		t.Errorf("Line = %q, want %q", lines[1], expected)
	}
}

func TestRecord_CustomHeaderTemplate(t *testing.T) {
	clock := newFakeClock()
	w, path := newTestWriter(t, clock, WithHeaderTemplate("{{level}}|"))

	w.Critical("meltdown")

	lines := readLines(t, path)
	if lines[0] != "info|Log Started." {
		t.Errorf("Line 0 = %q", lines[0])
	}
	if lines[1] != "critical|meltdown" {
		t.Errorf("Line 1 = %q", lines[1])
	}
}

func TestConsoleOutput(t *testing.T) {
	var console bytes.Buffer
	clock := newFakeClock()
	path := filepath.Join(t.TempDir(), "test.log")

	w, err := New(path, WithClock(clock.Now), WithConsole(&console))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	expectedStart := "\x1b[1;37;40mLog Started.\x1b[0m\n"
	if console.String() != expectedStart {
		t.Errorf("Console after New() = %q, want %q", console.String(), expectedStart)
	}
	console.Reset()

	w.Warning("half ", NoReport())
	w.Warning("done")
	w.Verbose("quiet", NoPrint())

	expected := "\x1b[1;33;40mhalf \x1b[0m\x1b[1;33;40mdone\x1b[0m\n"
	if console.String() != expected {
		t.Errorf("Console = %q, want %q", console.String(), expected)
	}

	lines := readLines(t, path)
	if !strings.HasSuffix(lines[len(lines)-1], "[V]: quiet") {
		t.Errorf("Expected unprinted record to still be written, got %q", lines[len(lines)-1])
	}
}

func TestConsoleOutput_NoColor(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "test.log")

	w, err := New(path, WithConsole(&console), WithColor(false))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	w.Critical("plain")

	if console.String() != "Log Started.\nplain\n" {
		t.Errorf("Console = %q", console.String())
	}
}

func TestClose_WritesFinalRecord(t *testing.T) {
	clock := newFakeClock()
	w, path := newTestWriter(t, clock)

	intervals := []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}
	for i, d := range intervals {
		clock.Advance(d)
		w.Info(fmt.Sprintf("record %d", i))
	}
	clock.Advance(500 * time.Millisecond)

	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	lines := readLines(t, path)
	if len(lines) != len(intervals)+2 {
		t.Fatalf("Expected %d lines, got %d: %q", len(intervals)+2, len(lines), lines)
	}
	expected := "2024-05-01 10:00:06 (00:00:00.500000) [I]: Log Ended (Total run-time 00:00:06.500000)."
	if lines[len(lines)-1] != expected {
		t.Errorf("Last line = %q, want %q", lines[len(lines)-1], expected)
	}
}

func TestClose_Idempotent(t *testing.T) {
	clock := newFakeClock()
	w, path := newTestWriter(t, clock)

	w.Close()
	w.Close()

	lines := readLines(t, path)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), lines)
	}

	err := w.Record(Info, "too late", true, true)
	if !errors.Is(err, rlerrors.ErrClosed) {
		t.Errorf("Expected closed error, got %v", err)
	}
	if w.Degraded() {
		t.Errorf("Expected writing after close not to mark the writer degraded")
	}
	if lines := readLines(t, path); len(lines) != 2 {
		t.Errorf("Expected no lines after close, got %q", lines)
	}
}

func TestRecord_AppendFailure(t *testing.T) {
	clock := newFakeClock()
	w, path := newTestWriter(t, clock)

	// Replace the log file with a directory so the next open fails.
	if err := os.Remove(path); err != nil {
		t.Fatalf("Failed to remove log file: %v", err)
	}
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	err := w.Record(Error, "lost", true, false)
	if !errors.Is(err, rlerrors.ErrFile) {
		t.Fatalf("Expected file error, got %v", err)
	}
	if !w.Degraded() {
		t.Error("Expected writer to be degraded")
	}
	if w.Pending() != 0 {
		t.Errorf("Expected failed line to be dropped, %d fragments pending", w.Pending())
	}

	// Level methods and Close must not fail the caller.
	w.Warning("also lost")
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
	if !errors.Is(w.Err(), rlerrors.ErrFile) {
		t.Errorf("Err() = %v, want file error", w.Err())
	}
}

func TestWriter_ConcurrentRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	w, err := New(path, WithConsole(io.Discard))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	const workers, perWorker = 8, 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				w.Debug(fmt.Sprintf("worker %d record %d", id, j))
			}
		}(i)
	}
	wg.Wait()
	w.Close()

	lines := readLines(t, path)
	if len(lines) != workers*perWorker+2 {
		t.Fatalf("Expected %d lines, got %d", workers*perWorker+2, len(lines))
	}
	for _, line := range lines {
		if !lineRegexp.MatchString(line) {
			t.Errorf("Malformed line %q", line)
		}
	}
}

func TestEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "scenario.log")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("Expected %s not to exist", path)
	}

	w, err := New(path, WithConsole(io.Discard))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	w.Info("This is an info log.")
	w.Debug("This is a debug log.")
	w.Warning("This is a warning log.")
	w.Error("This is an error log.")
	w.Critical("This is a critical log.")
	w.Verbose("This is a verbose log.")
	w.Close()

	if w.Degraded() {
		t.Fatalf("Unexpected write failure: %v", w.Err())
	}

	lines := readLines(t, path)
	if len(lines) != 8 {
		t.Fatalf("Expected 8 lines, got %d: %q", len(lines), lines)
	}

	tags := []string{"[I]", "[I]", "[D]", "[W]", "[E]", "[C]", "[V]", "[I]"}
	var previous time.Time
	for i, line := range lines {
		if !lineRegexp.MatchString(line) {
			t.Errorf("Line %d does not match header format: %q", i, line)
			continue
		}
		if !strings.Contains(line, ") "+tags[i]+": ") {
			t.Errorf("Line %d: expected tag %s in %q", i, tags[i], line)
		}

		ts, err := time.ParseInLocation("2006-01-02 15:04:05", line[:19], time.Local)
		if err != nil {
			t.Errorf("Line %d: bad timestamp: %v", i, err)
			continue
		}
		if ts.Before(previous) {
			t.Errorf("Line %d: timestamp %v before previous %v", i, ts, previous)
		}
		previous = ts
	}

	if !strings.Contains(lines[0], "Log Started.") {
		t.Errorf("First line = %q", lines[0])
	}
	if !strings.Contains(lines[7], "Log Ended (Total run-time ") {
		t.Errorf("Last line = %q", lines[7])
	}
}
