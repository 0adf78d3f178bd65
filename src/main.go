package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"elevsim/src/building"
	"elevsim/src/config"
	"elevsim/src/events"
	"elevsim/src/report"
	"elevsim/src/types"
	"elevsim/src/utils"

	"github.com/google/uuid"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("elevsim", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "YAML building file (floors, elevators, log_level)")
	envPath := flags.String("env", "", "dotenv file with ELEVSIM_* overrides")
	verbose := flags.Bool("v", false, "log device triggers and changes")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: elevsim [flags] event-file\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return 1
	}
	eventPath := flags.Arg(0)

	cfg, err := config.Load(*configPath)
	if err == nil {
		err = cfg.ApplyEnv(*envPath)
	}
	if err != nil {
		fmt.Fprintf(stderr, "*** Bad configuration: %v\n", err)
		return 1
	}
	level, _ := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	utils.InitLogger(stderr, level, "run", uuid.NewString())

	cs, err := building.New(cfg)
	if err != nil {
		slog.Error("Building construction failed", "err", err)
		return 1
	}
	out := report.NewPrinter(stdout)
	out.Status(cs)

	n, err := events.ReadFile(eventPath, cs, out.Line)
	switch {
	case errors.Is(err, os.ErrNotExist):
		fmt.Fprintf(stderr, "*** File not found: %s\n", eventPath)
		return 1
	case err != nil:
		fmt.Fprintf(stderr, "*** I/O error on file: %s: %v\n", eventPath, err)
		return 1
	}
	slog.Info("Event file loaded", "path", eventPath, "stimuli", n)

	steps := cs.Run(func(s types.Stimulus) {
		out.Time(s.Timestamp)
		out.Status(cs)
	})
	slog.Info("Simulation finished", "steps", steps)
	return 0
}
