package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared by the filter and the doctor command.
type commonFlags struct {
	config    string
	pandoc    string
	inlineTag string
}

// filterFlags holds all flags for the default filter mode.
type filterFlags struct {
	common      commonFlags
	verbose     bool
	version     bool
	printConfig bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.pandoc, "pandoc", "", "converter binary (default: pandoc)")
	fs.StringVar(&f.inlineTag, "inline-tag", "", "element wrapping inline math (default: span)")
}

// newFlagSet returns a FlagSet that reports errors to the caller instead
// of printing them.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}

// parseFlags parses filter flags and returns positional args.
func parseFlags(args []string) (*filterFlags, []string, error) {
	fs := newFlagSet("mdmath")
	f := &filterFlags{}

	addCommonFlags(fs, &f.common)
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "report progress on stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective config as YAML and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	common commonFlags
	json   bool
}

// parseDoctorFlags parses doctor command flags.
func parseDoctorFlags(args []string) (*doctorFlags, []string, error) {
	fs := newFlagSet("doctor")
	f := &doctorFlags{}

	addCommonFlags(fs, &f.common)
	fs.BoolVar(&f.json, "json", false, "print results as JSON")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
