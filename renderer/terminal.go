package renderer

import (
	"github.com/charmbracelet/glamour"
)

// Terminal renders markdown for display in a terminal, wrapped at width
// columns. The style follows the terminal background, and is plain text when
// the output is not a terminal.
func Terminal(markdown string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}
