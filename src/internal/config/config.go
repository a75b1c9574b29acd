package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	rlerrors "github.com/maksimkurb/runlog/src/internal/errors"
	"github.com/maksimkurb/runlog/src/internal/log"
	"github.com/maksimkurb/runlog/src/internal/logwriter"
)

const (
	appName        = "runlog"
	configFileName = "runlog.toml"
	logFileName    = "runlog.log"
)

// DefaultConfigPath returns the config file location under the XDG config directory.
func DefaultConfigPath() (string, error) {
	return xdg.ConfigFile(filepath.Join(appName, configFileName))
}

// DefaultLogFile returns the log file location under the XDG state directory.
func DefaultLogFile() (string, error) {
	return xdg.StateFile(filepath.Join(appName, logFileName))
}

// DefaultConfig returns a config that logs to the XDG state directory.
func DefaultConfig() (*Config, error) {
	logFile, err := DefaultLogFile()
	if err != nil {
		return nil, rlerrors.NewConfigError("failed to resolve default log file", err)
	}

	cfg := &Config{
		General: &GeneralConfig{LogFile: logFile},
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, rlerrors.NewConfigError("failed to get absolute path", err)
		} else {
			configFile = path
		}
	}

	content, err := os.ReadFile(configFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil, rlerrors.NewConfigError(fmt.Sprintf("configuration file not found: %s", configFile), err)
	} else if err != nil {
		return nil, rlerrors.NewConfigError("failed to read config file", err)
	}

	var config Config
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
		}
		return nil, rlerrors.NewConfigError("failed to parse config file", err)
	}

	config._absConfigFilePath = configFile
	config.ApplyDefaults()

	log.Debugf("Configuration file path: %s", configFile)
	if config.General.LogFile != "" {
		log.Debugf("Log file: %s", config.GetAbsLogFile())
	}

	return &config, nil
}

// ApplyDefaults fills in optional settings left empty in the file.
func (c *Config) ApplyDefaults() {
	if c.General == nil {
		c.General = &GeneralConfig{}
	}
	if c.General.PrintOut == nil {
		printOut := true
		c.General.PrintOut = &printOut
	}
	if c.General.Color == "" {
		c.General.Color = ColorAuto
	}
	if c.General.Console == "" {
		c.General.Console = ConsoleStdout
	}

	if c.Format == nil {
		c.Format = &FormatConfig{}
	}
	if c.Format.HeaderTemplate == "" {
		c.Format.HeaderTemplate = logwriter.DefaultHeaderTemplate
	}
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

// WriteConfig serializes the config to path and remembers path as its location.
func (c *Config) WriteConfig(path string) error {
	config, err := c.SerializeConfig()
	if err != nil {
		return rlerrors.NewConfigError("failed to serialize config", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return rlerrors.NewConfigError("failed to get absolute path", err)
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return rlerrors.NewConfigError("failed to create config directory", err)
	}
	if err := os.WriteFile(absPath, config.Bytes(), 0644); err != nil {
		return rlerrors.NewConfigError("failed to write config file", err)
	}

	c._absConfigFilePath = absPath
	return nil
}
