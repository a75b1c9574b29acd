package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/runlog/src/internal/config"
	"github.com/maksimkurb/runlog/src/internal/log"
)

func CreateCheckConfigCommand() *CheckConfigCommand {
	gc := &CheckConfigCommand{
		fs: flag.NewFlagSet("check-config", flag.ExitOnError),
	}
	return gc
}

// CheckConfigCommand validates the configuration without touching the log file.
type CheckConfigCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config
}

func (g *CheckConfigCommand) Name() string {
	return g.fs.Name()
}

func (g *CheckConfigCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadConfig(ctx); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *CheckConfigCommand) Run() error {
	if path := g.cfg.GetConfigFilePath(); path != "" {
		log.Infof("Checking configuration %s", path)
	} else {
		log.Infof("No configuration file given, checking defaults")
	}

	if err := g.cfg.ValidateConfig(); err != nil {
		return err
	}

	out := g.ctx.stdout()
	fmt.Fprintf(out, "log_file        = %s\n", g.cfg.GetAbsLogFile())
	fmt.Fprintf(out, "print_out       = %t\n", g.cfg.IsPrintOut())
	fmt.Fprintf(out, "color           = %s\n", g.cfg.General.Color)
	fmt.Fprintf(out, "console         = %s\n", g.cfg.General.Console)
	fmt.Fprintf(out, "header_template = %q\n", g.cfg.Format.HeaderTemplate)

	log.Infof("Configuration is valid")
	return nil
}
