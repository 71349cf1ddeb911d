// Package mdmath replaces dollar-delimited math in Markdown with markup
// produced by an external converter (pandoc --mathml by default).
//
// # Quick Start
//
//	f, err := mdmath.NewFilter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := f.Process(ctx, "Euler: $e^{i\\pi} + 1 = 0$")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Matching Rules
//
// The filter runs two passes over the whole document, block math first:
//
//  1. Block math: $$...$$ with no dollar sign inside. The body may span
//     lines. A body containing a single $ does not match.
//  2. Inline math: $...$ on one line, not touching another $ on the
//     outside, with a non-space character just inside both markers.
//     This keeps prose such as "I made $5, but lost $100" untouched.
//
// Every match, delimiters included, is sent to the MathConverter. A
// leading <p> and a trailing "</p>\n" are removed from its output.
// Inline results are wrapped in a <span> (see WithInlineTag) so that
// Markdown processors do not end the surrounding paragraph.
//
// # Converters
//
// PandocConverter runs one pandoc process per expression and feeds the
// expression on stdin. Any failure aborts Process; no partial result
// is returned.
//
//	conv := mdmath.NewPandocConverter()
//	conv.Command = "/opt/pandoc/bin/pandoc"
//	f, err := mdmath.NewFilter(mdmath.WithConverter(conv))
package mdmath
