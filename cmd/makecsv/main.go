package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/ieee0824/makecsv-go"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("makecsv", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts options
	opts.register(fs)

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: makecsv --feat FEATS_SCP --utt2num_frames FILE --dict DICT --text TEXT --unit UNIT")
		fmt.Fprintln(stderr, "  Joins a Kaldi data directory into a training manifest CSV.")
		fmt.Fprintln(stderr, "  Output goes to stdout.")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := opts.config(fs)
	if err != nil {
		logger.Error("load config", "error", err)
		return 2
	}

	builderOpts := []makecsv.Option{makecsv.WithLogger(logger)}
	if !opts.quiet {
		builderOpts = append(builderOpts, makecsv.WithProgress(stderr))
	}

	b, err := makecsv.NewFromConfig(cfg, builderOpts...)
	if err != nil {
		logger.Error("init", "error", err)
		if errors.Is(err, makecsv.ErrMissingInput) || errors.Is(err, makecsv.ErrUnsupportedUnit) {
			fs.Usage()
			return 2
		}
		return 1
	}

	if _, err := b.Build(stdout); err != nil {
		logger.Error("build manifest", "error", err)
		return 1
	}
	return 0
}
