package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdmath [flags] < input.md > output.md")
	fmt.Fprintln(w, "       mdmath doctor [--json] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Replace $$block$$ and $inline$ math read from stdin with converter markup.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --pandoc <path>       Converter binary (default: pandoc)")
	fmt.Fprintln(w, "      --inline-tag <name>   Element wrapping inline math (default: span)")
	fmt.Fprintln(w, "  -v, --verbose             Report progress on stderr")
	fmt.Fprintln(w, "      --print-config        Print the effective config as YAML")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  doctor    Check that the converter is installed and produces MathML")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  success")
	fmt.Fprintln(w, "  1  general error")
	fmt.Fprintln(w, "  2  invalid flags or config")
	fmt.Fprintln(w, "  3  reading stdin or writing stdout failed")
	fmt.Fprintln(w, "  4  math conversion failed")
}
