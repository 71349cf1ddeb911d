package yamlutil_test

// Notes:
// - Marshal error branch: not tested because yaml.Marshal only fails with
//   unmarshalable types (channels, functions), which no caller passes.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-mdmath/internal/yamlutil"
)

type converterSection struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

type testConfig struct {
	Converter converterSection `yaml:"converter"`
	Tag       string           `yaml:"tag"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Parses YAML and rejects unknown fields
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "nested sections and sequences",
			data: []byte("converter:\n  command: pandoc\n  args: [\"--mathml\"]\ntag: span\n"),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				cfg := v.(*testConfig)
				if cfg.Converter.Command != "pandoc" {
					t.Errorf("Command = %q, want %q", cfg.Converter.Command, "pandoc")
				}
				if len(cfg.Converter.Args) != 1 || cfg.Converter.Args[0] != "--mathml" {
					t.Errorf("Args = %v, want [--mathml]", cfg.Converter.Args)
				}
				if cfg.Tag != "span" {
					t.Errorf("Tag = %q, want %q", cfg.Tag, "span")
				}
			},
		},
		{
			name: "unicode content",
			data: []byte("tag: 数学"),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				cfg := v.(*testConfig)
				if cfg.Tag != "数学" {
					t.Errorf("Tag = %q, want %q", cfg.Tag, "数学")
				}
			},
		},
		{
			name:    "unknown field causes error",
			data:    []byte("tag: span\nwrapper: div"),
			dest:    &testConfig{},
			wantErr: errors.New("yamlutil:"),
		},
		{
			name:    "invalid YAML syntax",
			data:    []byte("tag: [unclosed"),
			dest:    &testConfig{},
			wantErr: errors.New("yamlutil:"),
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("tag: span"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if errors.Is(err, tt.wantErr) {
					return
				}
				if !strings.Contains(err.Error(), tt.wantErr.Error()) {
					t.Fatalf("error = %q, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict_InputTooLarge - Size limit
// ---------------------------------------------------------------------------

func TestUnmarshalStrict_InputTooLarge(t *testing.T) {
	t.Parallel()

	data := []byte("tag: " + strings.Repeat("a", yamlutil.MaxInputSize))

	err := yamlutil.UnmarshalStrict(data, &testConfig{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Fatalf("error = %v, want ErrInputTooLarge", err)
	}
}

// ---------------------------------------------------------------------------
// TestMarshal - Round trip through UnmarshalStrict
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	in := testConfig{
		Converter: converterSection{Command: "pandoc", Args: []string{"--mathml"}},
		Tag:       "span",
	}

	data, err := yamlutil.Marshal(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), "command: pandoc") {
		t.Errorf("output missing command, got:\n%s", data)
	}

	var out testConfig
	if err := yamlutil.UnmarshalStrict(data, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Converter.Command != in.Converter.Command || out.Tag != in.Tag {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
