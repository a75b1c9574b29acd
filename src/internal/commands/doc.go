// Package commands implements CLI command handlers for runlog.
//
// Each command implements the Runner interface:
//   - Init(): Parse arguments and load configuration
//   - Run(): Execute the command
//   - Name(): Return command name for routing
//
// # Available Commands
//
//   - demo: Start a log, write one record per severity and end it
//   - pipe: Record every line read from stdin
//   - check-config: Validate the configuration and print the resolved settings
//   - init-config: Write a configuration file with default settings
//
// Commands that write a log open it through openWriter and always close it on
// return, so the "Log Ended" record is written on every exit path.
package commands
