// Package log provides the diagnostic console logger of the runlog CLI.
//
// It is separate from the log file a command produces: messages here describe
// what the tool itself is doing (configuration loaded, file path resolved,
// write failures) and never reach the log file.
//
// Level prefixes reuse the tags and colors of logwriter severities:
//
//   - DEBUG: [D], green (only shown in verbose mode)
//   - INFO:  [I], bright white
//   - WARN:  [W], yellow
//   - ERROR: [E], red (stderr)
//   - FATAL: [C], blinking red (stderr, exits with code 1)
//
// # Example Usage
//
//	log.SetVerbose(true)
//	log.Debugf("Resolved log file: %s", path)
//	log.Warnf("Log file %s is degraded: %v", path, err)
//
// Output control:
//
//	log.SetForceStdErr(true) // Send all logs to stderr
//	log.SetNoColor(true)     // Plain tags, e.g. when stderr is not a terminal
//
// The package uses global state for simplicity; configure it once at startup.
package log
