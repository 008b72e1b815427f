package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// StyleMarkdown skips terminal styling and returns the markdown unchanged.
const StyleMarkdown = "markdown"

// Terminal styles markdown for a terminal. style is a glamour standard style
// name ("dark", "light", "notty", ...), "auto" to detect the terminal
// background, or StyleMarkdown for raw output. A wrap of 0 disables wrapping.
func Terminal(md, style string, wrap int) (string, error) {
	if style == StyleMarkdown {
		return md, nil
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(wrap)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("creating %s renderer: %w", style, err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
