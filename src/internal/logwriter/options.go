package logwriter

import (
	"io"
	"os"
	"time"
)

type options struct {
	clock          func() time.Time
	console        io.Writer
	color          bool
	headerTemplate string
}

func defaultOptions() options {
	return options{
		clock:          time.Now,
		console:        os.Stdout,
		color:          true,
		headerTemplate: DefaultHeaderTemplate,
	}
}

// Option configures a Writer at construction.
type Option func(*options)

// WithClock replaces time.Now as the source of timestamps.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithConsole sets where printed records go. A nil writer disables console output.
func WithConsole(w io.Writer) Option {
	return func(o *options) {
		o.console = w
	}
}

// WithColor toggles the ANSI escape pair around console output.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.color = enabled
	}
}

// WithHeaderTemplate overrides the record header. Available variables:
// {{timestamp}}, {{elapsed}}, {{tag}}, {{level}}.
func WithHeaderTemplate(template string) Option {
	return func(o *options) {
		o.headerTemplate = template
	}
}

type recordOptions struct {
	report   bool
	printOut bool
}

// RecordOption adjusts a single call to one of the level methods.
type RecordOption func(*recordOptions)

// NoReport keeps the message in the pending buffer instead of writing a line.
// The next reported record on the writer carries it.
func NoReport() RecordOption {
	return func(o *recordOptions) {
		o.report = false
	}
}

// NoPrint suppresses the console copy of the message.
func NoPrint() RecordOption {
	return func(o *recordOptions) {
		o.printOut = false
	}
}
