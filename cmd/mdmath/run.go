package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alnah/go-mdmath"
	"github.com/alnah/go-mdmath/internal/config"
	"github.com/alnah/go-mdmath/internal/hints"
)

// Sentinel errors for CLI I/O.
var (
	ErrReadInput      = errors.New("failed to read input")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrUnexpectedArgs = errors.New("unexpected arguments (input is read from stdin)")
)

// run filters stdin to stdout. Output is written only after every
// expression has been converted.
func run(ctx context.Context, flags *filterFlags, env *Environment) error {
	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeFlags(&flags.common, cfg)

	if flags.printConfig {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		if _, err := env.Stdout.Write(data); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	var verbose io.Writer
	if flags.verbose {
		verbose = env.Stderr
	}

	filter, err := newFilter(cfg, env, verbose)
	if err != nil {
		return err
	}

	input, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	start := time.Now()
	output, err := filter.Process(ctx, string(input))
	if err != nil {
		return err
	}
	if verbose != nil {
		fmt.Fprintf(verbose, "converted %d bytes in %v\n", len(input), time.Since(start).Round(time.Millisecond))
	}

	if _, err := io.WriteString(env.Stdout, output); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// loadConfig returns the built-in config when nameOrPath is empty.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(nameOrPath)
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(nameOrPath)))
	}
	return cfg, err
}

// mergeFlags overrides config values with explicitly set flags.
func mergeFlags(flags *commonFlags, cfg *config.Config) {
	if flags.pandoc != "" {
		cfg.Converter.Command = flags.pandoc
	}
	if flags.inlineTag != "" {
		cfg.Inline.Tag = flags.inlineTag
	}
}

// newConverter builds the external converter described by cfg.
func newConverter(cfg *config.Config, env *Environment) *mdmath.PandocConverter {
	return &mdmath.PandocConverter{
		Runner:  env.Runner,
		Command: cfg.Converter.Command,
		Args:    cfg.Converter.Args,
	}
}

// newFilter builds the filter described by cfg. verbose may be nil.
func newFilter(cfg *config.Config, env *Environment, verbose io.Writer) (*mdmath.Filter, error) {
	opts := []mdmath.Option{
		mdmath.WithConverter(newConverter(cfg, env)),
		mdmath.WithInlineTag(cfg.Inline.Tag),
	}
	if verbose != nil {
		opts = append(opts, mdmath.WithVerbose(verbose))
	}

	filter, err := mdmath.NewFilter(opts...)
	if errors.Is(err, mdmath.ErrInvalidInlineTag) {
		return nil, fmt.Errorf("%w%s", err, hints.ForInlineTag())
	}
	return filter, err
}
