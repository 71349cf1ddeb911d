package mdmath_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-mdmath"
)

// upperConverter stands in for pandoc so the example runs without it.
type upperConverter struct{}

func (upperConverter) ToMarkup(_ context.Context, expr string) (string, error) {
	return "<p><math>" + strings.ToUpper(strings.Trim(expr, "$")) + "</math></p>\n", nil
}

// Example shows block and inline math replaced in one document.
func Example() {
	f, err := mdmath.NewFilter(mdmath.WithConverter(upperConverter{}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	out, err := f.Process(context.Background(), "Inline $x^2$ and block $$y$$, but not $5 or $10.")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(out)
	// Output: Inline <span><math>X^2</math></span> and block <math>Y</math>, but not $5 or $10.
}

// Example_inlineTag wraps inline math in a custom element.
func Example_inlineTag() {
	f, err := mdmath.NewFilter(
		mdmath.WithConverter(upperConverter{}),
		mdmath.WithInlineTag("bdi"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	out, _ := f.Process(context.Background(), "$a+b$")
	fmt.Println(out)
	// Output: <bdi><math>A+B</math></bdi>
}

// ExampleStripParagraph shows how converter output is unwrapped.
func ExampleStripParagraph() {
	fmt.Printf("%q\n", mdmath.StripParagraph("<p><math><mi>x</mi></math></p>\n"))
	// Output: "<math><mi>x</mi></math>"
}
