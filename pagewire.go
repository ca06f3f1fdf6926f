// Package pagewire models in-page behaviors for server-rendered
// applications: notice banners that fade and detach on a fixed timeline, a
// reusable field-validation helper, and input wiring that clears stale error
// presentation while the user edits. The root package re-exports the common
// entry points; the pkg tree holds the full API.
package pagewire

import (
	"context"

	"github.com/goliatone/go-pagewire/pkg/dom"
	"github.com/goliatone/go-pagewire/pkg/form"
	"github.com/goliatone/go-pagewire/pkg/notices"
	"github.com/goliatone/go-pagewire/pkg/pagespec"
	"github.com/goliatone/go-pagewire/pkg/render"
	"github.com/goliatone/go-pagewire/pkg/schedule"
)

// Document aliases the page document the behaviors attach to.
type Document = dom.Document

// Element aliases a page node.
type Element = dom.Element

// Notice aliases a one-time message banner.
type Notice = notices.Notice

// Check aliases a single field validation rule.
type Check = form.Check

// Predicate aliases the field predicate signature.
type Predicate = form.Predicate

// RenderOptions aliases the per-render overrides.
type RenderOptions = render.RenderOptions

// WireOption configures Wire.
type WireOption func(*wireConfig)

type wireConfig struct {
	clock    schedule.Clock
	bindings *form.Bindings
}

// WithClock substitutes the clock driving the dismiss timeline.
func WithClock(clock schedule.Clock) WireOption {
	return func(cfg *wireConfig) {
		if clock != nil {
			cfg.clock = clock
		}
	}
}

// WithBindings installs explicit field to error-display associations for the
// input wiring.
func WithBindings(bindings *form.Bindings) WireOption {
	return func(cfg *wireConfig) {
		if bindings != nil {
			cfg.bindings = bindings
		}
	}
}

// Wire attaches both page behaviors: banner auto-dismiss and error-clear on
// input. Nothing runs until the document's Ready signal fires.
func Wire(doc *Document, options ...WireOption) {
	cfg := wireConfig{clock: schedule.System()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	notices.NewDismisser(notices.WithClock(cfg.clock)).AutoDismiss(doc)
	form.NewValidator(form.WithBindings(cfg.bindings)).ClearOnInput(doc)
}

// ValidateField validates a single field with the convention-only default
// validator. See form.Validator for bindings-aware validation.
func ValidateField(doc *Document, fieldID string, fn Predicate, message string) bool {
	return form.ValidateField(doc, fieldID, fn, message)
}

// LoadPage parses a JSON or YAML page definition.
func LoadPage(data []byte, source string) (pagespec.Page, error) {
	return pagespec.Load(data, source)
}

// RenderHTML renders the document's current state with the built-in
// templates. Callers needing a custom engine construct render.Renderer
// directly.
func RenderHTML(ctx context.Context, doc *Document, options RenderOptions) ([]byte, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, doc, options)
}
