// Package utils provides small helpers shared by the runlog commands.
//
//   - Path utilities: resolve relative and "~/" paths against a base directory
//   - File utilities: close a resource and warn on failure
//   - Terminal detection: decide whether console output gets ANSI colors
//
// Path resolution:
//
//	absPath := utils.GetAbsolutePath("logs/job.log", "/etc/runlog")
//	// Returns: /etc/runlog/logs/job.log
package utils
