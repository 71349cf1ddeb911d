package mdmath

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Compile-time interface implementation checks.
var (
	_ MathConverter = (*PandocConverter)(nil)
	_ CommandRunner = (*ExecRunner)(nil)
)

// DefaultInlineTag is the element wrapped around converted inline math.
const DefaultInlineTag = "span"

// Wrapper markers removed from converter output.
const (
	paragraphOpen  = "<p>"
	paragraphClose = "</p>\n"
)

// Precompiled patterns. Inline math needs lookaround, which the standard
// regexp package does not support, so both passes use regexp2.
var (
	// $$...$$ with no dollar sign in the body, possibly spanning lines.
	blockMathPattern = regexp2.MustCompile(`\$\$[^$]+\$\$`, regexp2.None)

	// $...$ on one line, not adjacent to another $ outside the markers,
	// with non-whitespace just inside both markers.
	inlineMathPattern = regexp2.MustCompile(`(?<!\$)\$(?=\S)[^$\n]+(?<=\S)\$(?!\$)`, regexp2.None)

	inlineTagPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

// Filter replaces block and inline math in a document with converter output.
// Create with NewFilter.
type Filter struct {
	converter MathConverter
	inlineTag string
	verbose   io.Writer
}

// Option configures a Filter.
type Option func(*Filter)

// WithConverter sets the converter invoked for every math expression.
func WithConverter(c MathConverter) Option {
	return func(f *Filter) {
		f.converter = c
	}
}

// WithInlineTag sets the element used to wrap converted inline math.
// Empty keeps DefaultInlineTag.
func WithInlineTag(tag string) Option {
	return func(f *Filter) {
		if tag != "" {
			f.inlineTag = tag
		}
	}
}

// WithVerbose writes per-pass progress to w.
func WithVerbose(w io.Writer) Option {
	return func(f *Filter) {
		f.verbose = w
	}
}

// NewFilter creates a Filter backed by NewPandocConverter unless WithConverter is given.
func NewFilter(opts ...Option) (*Filter, error) {
	f := &Filter{
		converter: NewPandocConverter(),
		inlineTag: DefaultInlineTag,
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.converter == nil {
		return nil, ErrNoConverter
	}
	if !inlineTagPattern.MatchString(f.inlineTag) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInlineTag, f.inlineTag)
	}

	return f, nil
}

// Process converts all block math, then all inline math in the result.
// The first converter failure aborts the run and no output is returned.
func (f *Filter) Process(ctx context.Context, doc string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc, err := f.ConvertBlocks(ctx, doc)
	if err != nil {
		return "", err
	}

	return f.ConvertInline(ctx, doc)
}

// ConvertBlocks replaces every $$...$$ expression with its converted markup.
func (f *Filter) ConvertBlocks(ctx context.Context, doc string) (string, error) {
	out, n, err := replaceMatches(ctx, blockMathPattern, doc, f.convert)
	if err != nil {
		return "", fmt.Errorf("block math: %w", err)
	}
	f.logf("block math: %d expression(s) converted\n", n)
	return out, nil
}

// ConvertInline replaces every $...$ expression with its converted markup,
// wrapped in the inline tag.
func (f *Filter) ConvertInline(ctx context.Context, doc string) (string, error) {
	open, end := "<"+f.inlineTag+">", "</"+f.inlineTag+">"
	out, n, err := replaceMatches(ctx, inlineMathPattern, doc, func(ctx context.Context, expr string) (string, error) {
		markup, err := f.convert(ctx, expr)
		if err != nil {
			return "", err
		}
		return open + markup + end, nil
	})
	if err != nil {
		return "", fmt.Errorf("inline math: %w", err)
	}
	f.logf("inline math: %d expression(s) converted\n", n)
	return out, nil
}

// convert runs the converter and strips the paragraph wrapper from its output.
func (f *Filter) convert(ctx context.Context, expr string) (string, error) {
	markup, err := f.converter.ToMarkup(ctx, expr)
	if err != nil {
		return "", err
	}
	return StripParagraph(markup), nil
}

func (f *Filter) logf(format string, args ...any) {
	if f.verbose != nil {
		fmt.Fprintf(f.verbose, format, args...)
	}
}

// StripParagraph removes a leading "<p>" and a trailing "</p>\n" if present.
func StripParagraph(markup string) string {
	markup = strings.TrimPrefix(markup, paragraphOpen)
	return strings.TrimSuffix(markup, paragraphClose)
}

// replaceMatches substitutes every non-overlapping match of re in s, left to
// right, with the result of fn. It returns the number of replacements.
// Text between matches is copied byte for byte.
func replaceMatches(ctx context.Context, re *regexp2.Regexp, s string, fn func(context.Context, string) (string, error)) (string, int, error) {
	m, err := re.FindStringMatch(s)
	if err != nil {
		return "", 0, err
	}
	if m == nil {
		return s, 0, nil
	}

	// regexp2 reports rune positions; map them back to byte offsets.
	offsets := runeOffsets(s)

	var b strings.Builder
	b.Grow(len(s))
	last, n := 0, 0
	for m != nil {
		if err := ctx.Err(); err != nil {
			return "", n, err
		}

		start, end := offsets[m.Index], offsets[m.Index+m.Length]
		b.WriteString(s[last:start])

		repl, err := fn(ctx, s[start:end])
		if err != nil {
			return "", n, err
		}
		b.WriteString(repl)
		last = end
		n++

		m, err = re.FindNextMatch(m)
		if err != nil {
			return "", n, err
		}
	}
	b.WriteString(s[last:])

	return b.String(), n, nil
}

// runeOffsets returns the byte offset of every rune in s, plus len(s).
// Invalid bytes count as one rune each, as in []rune(s).
func runeOffsets(s string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}
