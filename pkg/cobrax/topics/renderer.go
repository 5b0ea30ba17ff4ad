package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer formats topic content for terminal display.
type Renderer interface {
	Render(content string) string
}

// PlainRenderer returns content unchanged.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string) string {
	return content
}

// GlamourRenderer renders markdown with terminal styling, falling back to
// the raw text when rendering fails.
type GlamourRenderer struct {
	// Width wraps output at the given column; 0 auto-detects.
	Width int
}

func (r *GlamourRenderer) Render(content string) string {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}
	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
