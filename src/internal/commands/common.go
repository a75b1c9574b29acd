package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/maksimkurb/runlog/src/internal/config"
	"github.com/maksimkurb/runlog/src/internal/log"
	"github.com/maksimkurb/runlog/src/internal/logwriter"
	"github.com/maksimkurb/runlog/src/internal/utils"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	LogFile    string
	Verbose    bool

	// Stdin, Stdout and Console replace the process streams; Console receives
	// the colored echo of records instead of the stream named in the config.
	Stdin   io.Reader
	Stdout  io.Writer
	Console io.Writer
}

func (ctx *AppContext) stdin() io.Reader {
	if ctx.Stdin != nil {
		return ctx.Stdin
	}
	return os.Stdin
}

func (ctx *AppContext) stdout() io.Writer {
	if ctx.Stdout != nil {
		return ctx.Stdout
	}
	return os.Stdout
}

// loadConfig reads the config file named by -config, or falls back to the
// default config when none was given. A -log flag overrides the log file.
func loadConfig(ctx *AppContext) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if ctx.ConfigPath != "" {
		cfg, err = config.LoadConfig(ctx.ConfigPath)
	} else {
		cfg, err = config.DefaultConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if ctx.LogFile != "" {
		logFile, err := filepath.Abs(utils.GetAbsolutePath(ctx.LogFile, ""))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve log file: %w", err)
		}
		cfg.General.LogFile = logFile
	}

	return cfg, nil
}

// loadAndValidateConfigOrFail loads configuration and validates it.
func loadAndValidateConfigOrFail(ctx *AppContext) (*config.Config, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// openWriter starts a new log at the configured file. The caller must close it.
func openWriter(cfg *config.Config, ctx *AppContext) (*logwriter.Writer, error) {
	var (
		console io.Writer
		stream  *os.File
	)
	switch {
	case ctx.Console != nil:
		console = ctx.Console
	case cfg.General.Console == config.ConsoleStderr:
		console, stream = os.Stderr, os.Stderr
	default:
		console, stream = os.Stdout, os.Stdout
	}

	if !cfg.IsPrintOut() {
		console = nil
	}

	path := cfg.GetAbsLogFile()
	log.Debugf("Opening log file %s", path)

	return logwriter.New(path,
		logwriter.WithConsole(console),
		logwriter.WithColor(colorEnabled(cfg.General.Color, stream)),
		logwriter.WithHeaderTemplate(cfg.Format.HeaderTemplate),
	)
}

func colorEnabled(mode string, stream *os.File) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return stream != nil && utils.IsTerminal(stream)
	}
}

// finish closes the writer and turns a degraded log into a command error.
func finish(w *logwriter.Writer) error {
	utils.CloseOrWarn(w)

	if err := w.Err(); err != nil {
		log.Warnf("Log %s is incomplete: %v", w.Path(), err)
		return fmt.Errorf("some records were not written to %s: %w", w.Path(), err)
	}
	log.Debugf("Log written to %s", w.Path())
	return nil
}
