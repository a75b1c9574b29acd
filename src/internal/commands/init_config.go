package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/maksimkurb/runlog/src/internal/config"
	"github.com/maksimkurb/runlog/src/internal/log"
)

func CreateInitConfigCommand() *InitConfigCommand {
	gc := &InitConfigCommand{
		fs: flag.NewFlagSet("init-config", flag.ExitOnError),
	}
	gc.fs.BoolVar(&gc.force, "force", false, "Overwrite an existing configuration file")
	return gc
}

// InitConfigCommand writes a configuration file populated with defaults.
type InitConfigCommand struct {
	fs    *flag.FlagSet
	ctx   *AppContext
	path  string
	force bool
}

func (g *InitConfigCommand) Name() string {
	return g.fs.Name()
}

func (g *InitConfigCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	g.path = ctx.ConfigPath
	if g.path == "" {
		path, err := config.DefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to resolve default config path: %w", err)
		}
		g.path = path
	}

	return nil
}

func (g *InitConfigCommand) Run() error {
	if _, err := os.Stat(g.path); err == nil && !g.force {
		return fmt.Errorf("configuration file already exists: %s (use -force to overwrite)", g.path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check configuration file: %w", err)
	}

	cfg, err := config.DefaultConfig()
	if err != nil {
		return err
	}
	if g.ctx.LogFile != "" {
		logFile, err := filepath.Abs(g.ctx.LogFile)
		if err != nil {
			return fmt.Errorf("failed to resolve log file: %w", err)
		}
		cfg.General.LogFile = logFile
	}

	if err := cfg.WriteConfig(g.path); err != nil {
		return err
	}

	log.Infof("Configuration written to %s", cfg.GetConfigFilePath())
	return nil
}
