package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
)

// runCall records one CommandRunner invocation.
type runCall struct {
	stdin string
	argv  []string
}

// fakeRunner is a CommandRunner whose behavior is set per test.
// By default it answers like "pandoc --mathml": a paragraph-wrapped
// <math> element echoing the expression body.
type fakeRunner struct {
	calls   []runCall
	respond func(stdin string, argv []string) (string, string, error)
}

func (f *fakeRunner) Run(_ context.Context, stdin string, name string, args ...string) (string, string, error) {
	argv := append([]string{name}, args...)
	f.calls = append(f.calls, runCall{stdin: stdin, argv: argv})
	if f.respond != nil {
		return f.respond(stdin, argv)
	}
	if len(args) == 1 && args[0] == "--version" {
		return "pandoc 3.1.11\nFeatures: +server +lua\n", "", nil
	}
	return "<p><math>" + strings.Trim(stdin, "$") + "</math></p>\n", "", nil
}

// failingRunner exits non-zero on every call, like a broken converter.
func failingRunner() *fakeRunner {
	return &fakeRunner{
		respond: func(string, []string) (string, string, error) {
			return "", "pandoc: parse error at line 1\n", errors.New("exit status 1")
		},
	}
}

// testEnv returns an Environment with in-memory I/O.
func testEnv(stdin string, runner *fakeRunner) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &Environment{
		Stdin:  strings.NewReader(stdin),
		Stdout: stdout,
		Stderr: stderr,
		Runner: runner,
		LookPath: func(file string) (string, error) {
			if strings.Contains(file, "/") {
				return file, nil
			}
			return "/usr/bin/" + file, nil
		},
	}, stdout, stderr
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }
