// Package logwriter writes leveled records to a single append-only log file.
//
// A Writer owns one file for the duration of a run. Constructing it removes
// whatever the file held before and writes a "Log Started." record; closing
// it writes "Log Ended" with the total run time. Every record in between is
// one line:
//
//	2024-05-01 10:00:03 (00:00:01.500000) [W]: disk almost full
//
// The parenthesised duration is the time since the previous reported record,
// not since the log started.
//
// # Severities
//
//   - Info     [I]  bright white
//   - Debug    [D]  green
//   - Warning  [W]  yellow
//   - Error    [E]  red
//   - Critical [C]  blinking, red background
//   - Verbose  [V]  blue
//
// All severities are always written; there is no level filtering.
//
// # Example Usage
//
//	w, err := logwriter.New("/var/log/job.log")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	w.Info("Copying files")
//	w.Warning("progress: ", logwriter.NoReport())
//	w.Warning("50%", logwriter.NoReport())
//	w.Warning(" done") // one line: "progress: 50% done"
//
// Level methods never return errors. A record that could not be appended is
// dropped and remembered in Err; Record returns the same error directly.
//
// Each append opens the file, takes an advisory lock, writes and closes it.
// A Writer is safe for concurrent use.
package logwriter
