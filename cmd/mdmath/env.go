package main

import (
	"io"
	"os"
	"os/exec"

	"github.com/alnah/go-mdmath"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, the subprocess runner, and PATH lookup.
type Environment struct {
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Runner   mdmath.CommandRunner
	LookPath func(file string) (string, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Runner:   &mdmath.ExecRunner{},
		LookPath: exec.LookPath,
	}
}
