package log

import (
	"fmt"
	"os"

	"github.com/maksimkurb/runlog/src/internal/logwriter"
)

const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
	levelFatal
)

var (
	verbose     = false
	disableLogs = false
	forceStdErr = false
	noColor     = false
	logLevels   = map[int]logwriter.Severity{
		levelDebug: logwriter.Debug,
		levelInfo:  logwriter.Info,
		levelWarn:  logwriter.Warning,
		levelError: logwriter.Error,
		levelFatal: logwriter.Critical,
	}
)

// SetVerbose sets the logging verbosity. If true, all log levels are displayed.
func SetVerbose(v bool) {
	verbose = v
}

// IsVerbose returns true if verbose logging is enabled.
func IsVerbose() bool {
	return verbose
}

// DisableLogs disables all logging.
func DisableLogs() {
	disableLogs = true
}

// IsDisabled returns true if logging is disabled.
func IsDisabled() bool {
	return disableLogs
}

// SetForceStdErr sends every level to stderr, keeping stdout free for command output.
func SetForceStdErr(v bool) {
	forceStdErr = v
}

// SetNoColor drops the ANSI escapes around level prefixes.
func SetNoColor(v bool) {
	noColor = v
}

// Debugf logs a debug message if verbose is true.
func Debugf(format string, args ...interface{}) {
	if verbose {
		logMessage(levelDebug, format, args...)
	}
}

// Infof logs an info message.
func Infof(format string, args ...interface{}) {
	logMessage(levelInfo, format, args...)
}

// Warnf logs a warning message.
func Warnf(format string, args ...interface{}) {
	logMessage(levelWarn, format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	logMessage(levelError, format, args...)
}

// Fatalf logs a critical message and exits the program.
func Fatalf(format string, args ...interface{}) {
	logMessage(levelFatal, format, args...)
	os.Exit(1)
}

func prefix(level int) string {
	severity := logLevels[level]
	if noColor {
		return severity.Tag()
	}
	colors := severity.Colors()
	return colors.Prefix + severity.Tag() + colors.Suffix
}

// logMessage formats and writes a log message with the specified log level.
func logMessage(level int, format string, args ...interface{}) {
	if disableLogs {
		return
	}
	message := fmt.Sprintf(format, args...)
	output := prefix(level) + " " + message + "\n"

	if forceStdErr || level >= levelError {
		_, _ = os.Stderr.WriteString(output)
	} else {
		_, _ = os.Stdout.WriteString(output)
	}
}
