// Package config handles configuration file parsing and validation for runlog.
//
// This package reads TOML configuration files describing where the log file
// lives and how records are echoed to the console.
//
// # Configuration Structure
//
//	[general]
//	log_file = "logs/job.log"   # relative to the config file directory
//	print_out = true
//	color = "auto"              # auto, always or never
//	console = "stdout"          # stdout or stderr
//
//	[format]
//	header_template = "{{timestamp}} ({{elapsed}}) {{tag}}: "
//
// Only general.log_file is required; everything else has a default.
// Without a config file, DefaultConfig logs to runlog/runlog.log under the
// XDG state directory.
//
// # Example Usage
//
//	cfg, err := config.LoadConfig("/etc/runlog.toml")
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	fmt.Println(cfg.GetAbsLogFile())
package config
