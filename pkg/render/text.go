package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-pagewire/pkg/dom"
)

// TextRenderer writes the document state as plain text, one line per element.
// Handy for terminals and log output where HTML is noise.
type TextRenderer struct{}

// NewTextRenderer constructs the plain-text renderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

func (r *TextRenderer) Name() string {
	return "text"
}

func (r *TextRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render lists banners first, then fields with their values and any visible
// error message.
func (r *TextRenderer) Render(ctx context.Context, doc *dom.Document, options RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("text renderer: document is nil")
	}

	var b strings.Builder
	if options.Title != "" {
		b.WriteString("# " + options.Title + "\n\n")
	}

	for _, banner := range doc.OfKind(dom.KindMessage) {
		b.WriteString(fmt.Sprintf("[%s] %s\n", strings.Join(banner.Classes, " "), banner.Text))
	}

	for _, field := range doc.Editable() {
		line := fmt.Sprintf("%s = %q", field.ID, field.Value)
		if display, ok := doc.ByID(options.Bindings.ErrorDisplayID(field.ID)); ok && display.Text != "" {
			line += "  !! " + display.Text
		}
		b.WriteString(line + "\n")
	}

	return []byte(b.String()), nil
}
