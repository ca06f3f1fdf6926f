package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-pagewire/pkg/dom"
	"github.com/goliatone/go-pagewire/pkg/form"
)

// Session walks a document's checks interactively: every answer feeds the
// document as an input event (clearing stale error state) before the check's
// predicate decides whether to move on or re-prompt.
type Session struct {
	driver    PromptDriver
	validator *form.Validator
}

// NewSession builds a session. A nil validator falls back to the
// convention-only default.
func NewSession(driver PromptDriver, validator *form.Validator) *Session {
	if validator == nil {
		validator = form.NewValidator()
	}
	return &Session{driver: driver, validator: validator}
}

// Run prompts for each check's field until its predicate accepts the value.
// Checks against fields missing from the document are skipped, matching the
// validator's permissive treatment of absent fields.
func (s *Session) Run(ctx context.Context, doc *dom.Document, checks []form.Check) error {
	if s == nil || s.driver == nil {
		return fmt.Errorf("tui: session has no prompt driver")
	}
	if doc == nil {
		return fmt.Errorf("tui: document is nil")
	}

	for _, check := range checks {
		field, ok := doc.ByID(check.FieldID)
		if !ok {
			continue
		}

		for {
			value, err := s.driver.Input(ctx, InputConfig{
				Message: promptLabel(field),
				Default: currentValue(doc, check.FieldID),
			})
			if err != nil {
				return err
			}

			doc.SetValue(check.FieldID, value)

			if s.validator.ValidateField(doc, check.FieldID, check.Predicate, check.Message) {
				break
			}
			if err := s.driver.Info(ctx, check.Message); err != nil {
				return err
			}
		}
	}
	return nil
}

func promptLabel(field dom.Element) string {
	if label := strings.TrimSpace(field.Attrs["label"]); label != "" {
		return label
	}
	return field.ID
}

func currentValue(doc *dom.Document, id string) string {
	if element, ok := doc.ByID(id); ok {
		return element.Value
	}
	return ""
}
