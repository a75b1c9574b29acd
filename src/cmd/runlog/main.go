package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/runlog/src/internal/commands"
	"github.com/maksimkurb/runlog/src/internal/log"
	"github.com/maksimkurb/runlog/src/internal/utils"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", "", "Path to configuration file (default: built-in settings, logging to the XDG state directory)")
	flag.StringVar(&ctx.LogFile, "log", "", "Path to the log file, overrides general.log_file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Leveled run log writer\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  demo                    Write one record of every severity to a fresh log\n")
		fmt.Fprintf(os.Stderr, "  pipe                    Record every line read from stdin\n")
		fmt.Fprintf(os.Stderr, "  check-config            Validate configuration and print resolved settings\n")
		fmt.Fprintf(os.Stderr, "  init-config             Write a configuration file with default settings\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}
	// Records are echoed on stdout; diagnostics stay on stderr.
	log.SetForceStdErr(true)
	log.SetNoColor(!utils.IsTerminal(os.Stderr))

	cmds := []commands.Runner{
		commands.CreateDemoCommand(),
		commands.CreatePipeCommand(),
		commands.CreateCheckConfigCommand(),
		commands.CreateInitConfigCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
