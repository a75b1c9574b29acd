package config

import (
	"path/filepath"

	"github.com/maksimkurb/runlog/src/internal/utils"
)

type Config struct {
	// General holds general configuration.
	General *GeneralConfig `toml:"general"`
	// Format controls how record headers are rendered.
	Format *FormatConfig `toml:"format"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// LogFile is the log file location. Relative paths resolve against the config file directory.
	LogFile string `toml:"log_file" json:"log_file" validate:"required,log_path"`
	// PrintOut echoes every record to the console (default: true).
	PrintOut *bool `toml:"print_out" json:"print_out"`
	// Color wraps console output in the level's ANSI colors: auto, always or never (default: auto).
	Color string `toml:"color" json:"color" validate:"oneof=auto always never"`
	// Console selects the console stream: stdout or stderr (default: stdout).
	Console string `toml:"console" json:"console" validate:"oneof=stdout stderr"`
}

type FormatConfig struct {
	// HeaderTemplate is prepended to every record. Available variables: {{timestamp}}, {{elapsed}}, {{tag}}, {{level}}.
	HeaderTemplate string `toml:"header_template" json:"header_template" validate:"header_template"`
}

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	ConsoleStdout = "stdout"
	ConsoleStderr = "stderr"
)

// GetConfigDir returns the directory of the loaded config file, or "" for a config built in memory.
func (c *Config) GetConfigDir() string {
	if c._absConfigFilePath == "" {
		return ""
	}
	return filepath.Dir(c._absConfigFilePath)
}

// GetConfigFilePath returns the absolute path of the loaded config file.
func (c *Config) GetConfigFilePath() string {
	return c._absConfigFilePath
}

// GetAbsLogFile returns the log file path resolved against the config directory.
func (c *Config) GetAbsLogFile() string {
	return utils.GetAbsolutePath(c.General.LogFile, c.GetConfigDir())
}

// IsPrintOut reports whether records are echoed to the console.
func (c *Config) IsPrintOut() bool {
	return c.General.PrintOut == nil || *c.General.PrintOut
}
