package render

import (
	"context"
	"fmt"
	"html"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-pagewire/pkg/dom"
	"github.com/goliatone/go-pagewire/pkg/notices"
	rendertemplate "github.com/goliatone/go-pagewire/pkg/render/template"
	gotemplate "github.com/goliatone/go-pagewire/pkg/render/template/gotemplate"
)

// Option configures the page renderer before construction.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer converts a document snapshot into an HTML page.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("page renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "page"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the page for the document's current state. The snapshot is
// taken once; concurrent timers mutating the document do not tear the output.
func (r *Renderer) Render(ctx context.Context, doc *dom.Document, options RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("page renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("page renderer: document is nil")
	}

	payload := map[string]any{
		"title":   options.Title,
		"theme":   buildThemeContext(options.Theme),
		"banners": bannerContext(doc, options),
		"fields":  fieldContext(doc, options),
	}
	for key, value := range options.Extra {
		if key = strings.TrimSpace(key); key != "" {
			payload[key] = value
		}
	}

	result, err := r.templates.RenderTemplate("templates/page.tmpl", payload)
	if err != nil {
		return nil, fmt.Errorf("page renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func bannerContext(doc *dom.Document, options RenderOptions) []map[string]any {
	levelClasses := notices.LevelClasses(options.Theme)

	var out []map[string]any
	for _, element := range doc.OfKind(dom.KindMessage) {
		out = append(out, map[string]any{
			"id":      element.ID,
			"classes": strings.Join(themedClasses(element.Classes, levelClasses), " "),
			"text":    element.Text,
			"markup":  element.Attrs["markup"],
			"style":   inlineStyle(element),
		})
	}
	return out
}

// themedClasses swaps a banner's built-in level class for the theme's class
// when the theme overrides that level. All other classes pass through.
func themedClasses(classes []string, levelClasses map[notices.Level]string) []string {
	out := make([]string, 0, len(classes))
	for _, class := range classes {
		replaced := class
		for level, themed := range levelClasses {
			if class == level.DefaultClass() && themed != class {
				replaced = themed
				break
			}
		}
		out = append(out, replaced)
	}
	return out
}

func inlineStyle(element dom.Element) string {
	var parts []string
	if element.Opacity != 1 {
		parts = append(parts, fmt.Sprintf("opacity: %g", element.Opacity))
	}
	if element.Transition != "" {
		parts = append(parts, "transition: "+element.Transition)
	}
	return strings.Join(parts, "; ")
}

func fieldContext(doc *dom.Document, options RenderOptions) []map[string]any {
	var out []map[string]any
	for _, element := range doc.Editable() {
		displayID := options.Bindings.ErrorDisplayID(element.ID)
		errorText := ""
		hasDisplay := false
		if display, ok := doc.ByID(displayID); ok {
			hasDisplay = true
			errorText = display.Text
		}

		out = append(out, map[string]any{
			"id":          element.ID,
			"label":       element.Attrs["label"],
			"control":     controlMarkup(element),
			"has_display": hasDisplay,
			"display_id":  displayID,
			"error_text":  errorText,
		})
	}
	return out
}

func controlMarkup(element dom.Element) string {
	id := html.EscapeString(element.ID)
	class := html.EscapeString(strings.Join(element.Classes, " "))
	value := html.EscapeString(element.Value)

	var b strings.Builder
	switch element.Kind {
	case dom.KindSelect:
		b.WriteString(`<select id="` + id + `" name="` + id + `"`)
		if class != "" {
			b.WriteString(` class="` + class + `"`)
		}
		b.WriteString(">")
		if value != "" {
			b.WriteString(`<option value="` + value + `" selected>` + value + `</option>`)
		}
		b.WriteString("</select>")
	case dom.KindTextArea:
		b.WriteString(`<textarea id="` + id + `" name="` + id + `"`)
		if class != "" {
			b.WriteString(` class="` + class + `"`)
		}
		b.WriteString(">" + value + "</textarea>")
	default:
		b.WriteString(`<input type="text" id="` + id + `" name="` + id + `"`)
		if class != "" {
			b.WriteString(` class="` + class + `"`)
		}
		if value != "" {
			b.WriteString(` value="` + value + `"`)
		}
		b.WriteString(">")
	}
	return b.String()
}
