package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/alnah/go-mdmath"
	flag "github.com/spf13/pflag"
)

// doctorProbe is converted during the doctor check.
const doctorProbe = "$x^2$"

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string        `json:"status"` // "ready", "warnings", "errors"
	Converter converterInfo `json:"converter"`
	Env       envInfo       `json:"environment"`
	Warnings  []string      `json:"warnings,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
}

// converterInfo holds converter detection results.
type converterInfo struct {
	Command string   `json:"command"`
	Args    []string `json:"args"`
	Found   bool     `json:"found"`
	Path    string   `json:"path,omitempty"`
	Version string   `json:"version,omitempty"`
	MathML  bool     `json:"mathml"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	Config        string `json:"config,omitempty"`
	InlineTag     string `json:"inline_tag"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad flags or config.
func runDoctorCmd(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseDoctorFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "mdmath doctor: %v\n", err)
		return ExitUsage
	}
	if len(positional) > 0 {
		fmt.Fprintf(env.Stderr, "mdmath doctor: %v: %q\n", ErrUnexpectedArgs, positional)
		return ExitUsage
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		fmt.Fprintf(env.Stderr, "mdmath doctor: %v\n", err)
		return exitCodeFor(err)
	}
	mergeFlags(&flags.common, cfg)

	result := &doctorResult{
		Status: "ready",
		Converter: converterInfo{
			Command: cfg.Converter.Command,
			Args:    cfg.Converter.Args,
		},
		Env: envInfo{
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			Config:    flags.common.config,
			InlineTag: cfg.Inline.Tag,
		},
	}
	result.Env.Container, result.Env.ContainerHint = isContainer()

	checkConverter(ctx, result, env)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// checkConverter locates the converter, reads its version, and converts a
// probe expression to confirm it emits MathML.
func checkConverter(ctx context.Context, result *doctorResult, env *Environment) {
	info := &result.Converter

	path, err := env.LookPath(info.Command)
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s not found in PATH. Install pandoc or use --pandoc", info.Command))
		return
	}
	info.Found = true
	info.Path = path

	stdout, _, err := env.Runner.Run(ctx, "", path, "--version")
	if err == nil {
		info.Version = firstLine(stdout)
	} else {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not get %s version: %v", info.Command, err))
	}

	conv := &mdmath.PandocConverter{Runner: env.Runner, Command: path, Args: info.Args}
	markup, err := conv.ToMarkup(ctx, doctorProbe)
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Test conversion of %s failed: %v", doctorProbe, err))
		return
	}
	if !strings.Contains(markup, "<math") {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s output does not contain <math>; check converter args", info.Command))
		return
	}
	info.MathML = true
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer() (bool, string) {
	// Explicit override (highest priority)
	if os.Getenv("MDMATH_CONTAINER") == "1" {
		return true, "MDMATH_CONTAINER=1"
	}
	// Docker
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	// Podman / systemd-nspawn / general container indicator
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	// Kubernetes
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "mdmath doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Converter")
	if r.Converter.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Converter.Path)
		if r.Converter.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Converter.Version)
		}
		if len(r.Converter.Args) > 0 {
			fmt.Fprintf(w, "  [OK] Args: %s\n", strings.Join(r.Converter.Args, " "))
		}
		if r.Converter.MathML {
			fmt.Fprintln(w, "  [OK] MathML output: yes")
		}
	} else {
		fmt.Fprintf(w, "  [ERROR] %s not found\n", r.Converter.Command)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.Config != "" {
		fmt.Fprintf(w, "  [OK] Config: %s\n", r.Env.Config)
	}
	fmt.Fprintf(w, "  [OK] Inline tag: <%s>\n", r.Env.InlineTag)
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to convert")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
