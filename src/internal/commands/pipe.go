package commands

import (
	"bufio"
	"flag"
	"fmt"
	"strings"

	"github.com/maksimkurb/runlog/src/internal/config"
	"github.com/maksimkurb/runlog/src/internal/log"
	"github.com/maksimkurb/runlog/src/internal/logwriter"
	"github.com/maksimkurb/runlog/src/internal/utils"
)

const maxLineSize = 1024 * 1024

func CreatePipeCommand() *PipeCommand {
	gc := &PipeCommand{
		fs: flag.NewFlagSet("pipe", flag.ExitOnError),
	}
	gc.fs.StringVar(&gc.levelName, "level", "info", "Severity for lines without a prefix (info, debug, warning, error, critical, verbose)")
	gc.fs.BoolVar(&gc.prefixes, "prefixes", true, "Read a leading \"W: \" style severity prefix from each line")
	gc.fs.BoolVar(&gc.join, "join", false, "Write all input as a single record")
	gc.fs.StringVar(&gc.separator, "sep", " ", "Separator between lines when -join is set")
	return gc
}

// PipeCommand records every line read from stdin.
type PipeCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	levelName string
	level     logwriter.Severity
	prefixes  bool
	join      bool
	separator string
}

func (g *PipeCommand) Name() string {
	return g.fs.Name()
}

func (g *PipeCommand) Init(args []string, ctx *AppContext) error {
	g.ctx = ctx

	if err := g.fs.Parse(args); err != nil {
		return err
	}

	level, err := logwriter.ParseSeverity(g.levelName)
	if err != nil {
		return err
	}
	g.level = level

	if cfg, err := loadAndValidateConfigOrFail(ctx); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *PipeCommand) Run() error {
	w, err := openWriter(g.cfg, g.ctx)
	if err != nil {
		return err
	}
	defer utils.CloseOrWarn(w)

	printOut := g.cfg.IsPrintOut()
	warned := false
	record := func(level logwriter.Severity, msg string, report bool) {
		if err := w.Record(level, msg, report, printOut); err != nil && !warned {
			log.Warnf("Failed to write to %s: %v", w.Path(), err)
			warned = true
		}
	}

	scanner := bufio.NewScanner(g.ctx.stdin())
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	// With -join, each line is held back until the next one arrives so that
	// the last line is the one that reports the record.
	var (
		held      string
		heldLevel logwriter.Severity
		holding   bool
	)
	for scanner.Scan() {
		level, msg := g.parseLine(scanner.Text())

		if !g.join {
			record(level, msg, true)
			continue
		}
		if holding {
			record(heldLevel, held+g.separator, false)
		}
		held, heldLevel, holding = msg, level, true
	}
	if holding {
		record(heldLevel, held, true)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return finish(w)
}

// parseLine splits an optional "X: " severity prefix from the message.
func (g *PipeCommand) parseLine(line string) (logwriter.Severity, string) {
	if !g.prefixes {
		return g.level, line
	}

	prefix, rest, found := strings.Cut(line, ":")
	if !found || len(prefix) == 0 || len(prefix) > 3 {
		return g.level, line
	}
	level, err := logwriter.ParseSeverity(prefix)
	if err != nil {
		return g.level, line
	}
	return level, strings.TrimPrefix(rest, " ")
}
