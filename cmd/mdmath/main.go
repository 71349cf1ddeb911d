package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-mdmath"
	"github.com/alnah/go-mdmath/internal/hints"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches to the filter or a subcommand and returns the exit code.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	if len(args) > 1 && args[1] == "doctor" {
		return runDoctorCmd(ctx, args[2:], env)
	}

	flags, positional, err := parseFlags(args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "mdmath: %v\n", err)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "mdmath %s\n", Version)
		return ExitSuccess
	}

	if len(positional) > 0 {
		fmt.Fprintf(env.Stderr, "mdmath: %v: %q\n", ErrUnexpectedArgs, positional)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err := run(ctx, flags, env); err != nil {
		code := exitCodeFor(err)
		if code == ExitConversion && !errors.Is(err, mdmath.ErrConverterNotFound) {
			err = fmt.Errorf("%w%s", err, hints.ForDoctor())
		}
		fmt.Fprintf(env.Stderr, "mdmath: %v\n", err)
		return code
	}
	return ExitSuccess
}
