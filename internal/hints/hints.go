// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	info, err := os.Stat("/.dockerenv")
	return err == nil && !info.IsDir()
}

// ForConverterNotFound returns hints for a math converter missing from PATH.
func ForConverterNotFound(command string) string {
	var hints []string

	if command == "pandoc" {
		hints = append(hints, "install pandoc from https://pandoc.org/installing.html")
		if IsInContainer() {
			hints = append(hints, "in Docker, add pandoc to the image (e.g. apt-get install pandoc)")
		}
	} else {
		hints = append(hints, "check that "+command+" is in PATH")
	}
	hints = append(hints, "use --pandoc /path/to/binary")

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-mdmath/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-mdmath) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-mdmath") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInlineTag returns a hint for an invalid inline wrapper element.
func ForInlineTag() string {
	return format("use a lowercase element name such as span")
}

// ForDoctor suggests running the doctor command.
func ForDoctor() string {
	return format("run 'mdmath doctor' to check the converter setup")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
