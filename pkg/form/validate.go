package form

import (
	"strings"

	"github.com/goliatone/go-pagewire/pkg/dom"
)

// ErrorClass is the visual state flag toggled on invalid fields. It is added
// and removed additively; other classes on the field are never disturbed.
const ErrorClass = "error"

// Predicate evaluates a field's current text value. A nil predicate is
// treated as trivially satisfied.
type Predicate func(value string) bool

// Option configures a Validator.
type Option func(*Validator)

// WithBindings installs an explicit field to error-display registry.
func WithBindings(bindings *Bindings) Option {
	return func(v *Validator) {
		if bindings != nil {
			v.bindings = bindings
		}
	}
}

// Validator applies predicates to fields and toggles their error
// presentation. The zero value resolves error displays by convention.
type Validator struct {
	bindings *Bindings
}

// NewValidator constructs a Validator applying any provided options.
func NewValidator(options ...Option) *Validator {
	validator := &Validator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(validator)
	}
	return validator
}

// ValidateField evaluates the predicate against the named field's current
// value and updates the field's error presentation accordingly. A missing
// field is reported valid without evaluating the predicate or touching the
// document; the caller aggregates the returned booleans to gate submission.
func (v *Validator) ValidateField(doc *dom.Document, fieldID string, fn Predicate, message string) bool {
	if doc == nil {
		return true
	}
	fieldID = strings.TrimSpace(fieldID)
	field, ok := doc.ByID(fieldID)
	if !ok {
		return true
	}

	valid := fn == nil || fn(field.Value)
	displayID := v.bindingsOrConvention().ErrorDisplayID(fieldID)

	if valid {
		doc.RemoveClass(fieldID, ErrorClass)
		doc.SetText(displayID, "")
		return true
	}

	doc.AddClass(fieldID, ErrorClass)
	doc.SetText(displayID, message)
	return false
}

// ClearError unconditionally drops the field's error presentation without
// re-validating. This is the optimistic clearing the input wiring performs.
func (v *Validator) ClearError(doc *dom.Document, fieldID string) {
	if doc == nil {
		return
	}
	fieldID = strings.TrimSpace(fieldID)
	if fieldID == "" {
		return
	}
	doc.RemoveClass(fieldID, ErrorClass)
	doc.SetText(v.bindingsOrConvention().ErrorDisplayID(fieldID), "")
}

func (v *Validator) bindingsOrConvention() *Bindings {
	if v == nil {
		return nil
	}
	return v.bindings
}

// ValidateField validates with the convention-only default Validator.
func ValidateField(doc *dom.Document, fieldID string, fn Predicate, message string) bool {
	return (&Validator{}).ValidateField(doc, fieldID, fn, message)
}
