package commands

import (
	"flag"
	"fmt"

	"github.com/maksimkurb/runlog/src/internal/config"
	"github.com/maksimkurb/runlog/src/internal/logwriter"
	"github.com/maksimkurb/runlog/src/internal/utils"
)

func CreateDemoCommand() *DemoCommand {
	gc := &DemoCommand{
		fs: flag.NewFlagSet("demo", flag.ExitOnError),
	}
	gc.fs.BoolVar(&gc.fragments, "fragments", false, "Also write one record assembled from unreported fragments")
	return gc
}

// DemoCommand writes one record per severity between the start and end records.
type DemoCommand struct {
	fs        *flag.FlagSet
	ctx       *AppContext
	cfg       *config.Config
	fragments bool
}

func (g *DemoCommand) Name() string {
	return g.fs.Name()
}

func (g *DemoCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfigOrFail(ctx); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *DemoCommand) Run() error {
	w, err := openWriter(g.cfg, g.ctx)
	if err != nil {
		return err
	}
	defer utils.CloseOrWarn(w)

	w.Info("This is an info log.")
	w.Debug("This is a debug log.")
	w.Warning("This is a warning log.")
	w.Error("This is an error log.")
	w.Critical("This is a critical log.")
	w.Verbose("This is a verbose log.")

	if g.fragments {
		for i, part := range []string{"Fragments ", "joined ", "into "} {
			w.Verbose(fmt.Sprintf("%s(%d) ", part, i+1), logwriter.NoReport())
		}
		w.Verbose("one record.")
	}

	return finish(w)
}
