package logwriter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/valyala/fasttemplate"

	"github.com/maksimkurb/runlog/src/internal/errors"
)

const (
	startedMessage = "Log Started."
	endedMessage   = "Log Ended (Total run-time %s)."
)

// Writer appends leveled records to a single log file and echoes them to the console.
type Writer struct {
	mu sync.Mutex

	path      string
	pending   []string
	startedAt time.Time
	lastFlush time.Time

	now     func() time.Time
	console io.Writer
	color   bool
	header  *fasttemplate.Template

	err    error
	closed bool
}

// New discards any existing file at path and starts a new log there with a
// "Log Started." record. The caller owns the writer and must Close it.
func New(path string, opts ...Option) (*Writer, error) {
	if path == "" {
		return nil, errors.New(errors.ErrCodeConfig, "log file path is empty")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	header, err := compileHeader(o.headerTemplate)
	if err != nil {
		return nil, errors.NewConfigError("invalid header template", err)
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, errors.NewFileError(fmt.Sprintf("failed to remove previous log %s", path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.NewFileError("failed to create log directory", err)
	}

	started := o.clock()
	w := &Writer{
		path:      path,
		startedAt: started,
		lastFlush: started,
		now:       o.clock,
		console:   o.console,
		color:     o.color,
		header:    header,
	}

	if err := w.record(Info, startedMessage, true, true, started); err != nil {
		return nil, err
	}
	return w, nil
}

// Path returns the log file location.
func (w *Writer) Path() string {
	return w.path
}

// StartedAt returns the time the log was started.
func (w *Writer) StartedAt() time.Time {
	return w.startedAt
}

// Err returns the last failure to write a record, or nil.
func (w *Writer) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// Degraded reports whether any record has been lost to an I/O failure.
func (w *Writer) Degraded() bool {
	return w.Err() != nil
}

// Pending returns the number of fragments waiting for the next reported record.
func (w *Writer) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}

// Record adds msg to the pending line. With report set, the pending line is
// written to the file behind a timestamp header; with printOut set, msg is
// echoed to the console in the level's colors, newline-terminated only when
// reported. A failed write drops the line and is returned.
func (w *Writer) Record(level Severity, msg string, report, printOut bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return errors.NewClosedError(w.path)
	}
	return w.record(level, msg, report, printOut, w.now())
}

func (w *Writer) Info(msg string, opts ...RecordOption)     { w.emit(Info, msg, opts) }
func (w *Writer) Debug(msg string, opts ...RecordOption)    { w.emit(Debug, msg, opts) }
func (w *Writer) Warning(msg string, opts ...RecordOption)  { w.emit(Warning, msg, opts) }
func (w *Writer) Error(msg string, opts ...RecordOption)    { w.emit(Error, msg, opts) }
func (w *Writer) Critical(msg string, opts ...RecordOption) { w.emit(Critical, msg, opts) }
func (w *Writer) Verbose(msg string, opts ...RecordOption)  { w.emit(Verbose, msg, opts) }

// emit is the fire-and-forget path of the level methods; failures stay in Err.
func (w *Writer) emit(level Severity, msg string, opts []RecordOption) {
	o := recordOptions{report: true, printOut: true}
	for _, opt := range opts {
		opt(&o)
	}
	_ = w.Record(level, msg, o.report, o.printOut)
}

// Close writes the "Log Ended" record with the total run time. It runs once;
// later calls do nothing. Write failures are kept in Err and never returned.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	now := w.now()
	msg := fmt.Sprintf(endedMessage, FormatElapsed(now.Sub(w.startedAt)))
	_ = w.record(Info, msg, true, true, now)
	return nil
}

func (w *Writer) record(level Severity, msg string, report, printOut bool, now time.Time) error {
	w.pending = append(w.pending, msg)

	var err error
	if report {
		err = w.flush(level, now)
	}
	if printOut {
		w.print(level, msg, report)
	}

	if err != nil {
		w.err = err
	}
	return err
}

// flush writes all pending fragments as one line and resets the buffer.
func (w *Writer) flush(level Severity, now time.Time) error {
	if now.Before(w.lastFlush) {
		now = w.lastFlush
	}
	elapsed := now.Sub(w.lastFlush)

	var sb strings.Builder
	sb.WriteString(renderHeader(w.header, now, elapsed, level))
	for _, fragment := range w.pending {
		sb.WriteString(singleLine(fragment))
	}
	sb.WriteByte('\n')

	w.pending = w.pending[:0]
	w.lastFlush = now

	return appendLine(w.path, sb.String())
}

func (w *Writer) print(level Severity, msg string, report bool) {
	if w.console == nil {
		return
	}

	colors := level.Colors()
	if !w.color {
		colors = ColorPair{}
	}

	out := colors.Prefix + msg + colors.Suffix
	if report {
		out += "\n"
	}
	_, _ = io.WriteString(w.console, out)
}

// appendLine opens the file, appends line under an exclusive lock and closes
// it again, so no descriptor is held between records.
func appendLine(path, line string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.NewFileError("failed to open log file", err)
	}

	if err := lockFile(file); err != nil {
		_ = file.Close()
		return errors.NewFileError("failed to lock log file", err)
	}

	_, writeErr := file.WriteString(line)
	_ = unlockFile(file)
	closeErr := file.Close()

	if writeErr != nil {
		return errors.NewFileError("failed to append record", writeErr)
	}
	if closeErr != nil {
		return errors.NewFileError("failed to close log file", closeErr)
	}
	return nil
}
