package form

import (
	"strings"

	"github.com/goliatone/go-pagewire/pkg/dom"
)

// Check pairs a field with its predicate and the message shown when the
// predicate rejects the field's value.
type Check struct {
	FieldID   string
	Predicate Predicate
	Message   string
}

// Form aggregates ordered field checks so a submit handler can validate the
// whole page in one call.
type Form struct {
	validator *Validator
	checks    []Check
}

// NewForm constructs a Form sharing the validator's bindings.
func NewForm(validator *Validator, checks ...Check) *Form {
	if validator == nil {
		validator = &Validator{}
	}
	form := &Form{validator: validator}
	for _, check := range checks {
		form.Add(check)
	}
	return form
}

// Add appends a check. Checks without a field identifier are dropped.
func (f *Form) Add(check Check) {
	if f == nil {
		return
	}
	check.FieldID = strings.TrimSpace(check.FieldID)
	if check.FieldID == "" {
		return
	}
	f.checks = append(f.checks, check)
}

// Checks returns a copy of the registered checks in order.
func (f *Form) Checks() []Check {
	if f == nil || len(f.checks) == 0 {
		return nil
	}
	return append([]Check(nil), f.checks...)
}

// Validate runs every check against the document. All checks run even after
// a failure so each invalid field shows its own message; the result is the
// conjunction of the individual outcomes.
func (f *Form) Validate(doc *dom.Document) bool {
	if f == nil {
		return true
	}
	valid := true
	for _, check := range f.checks {
		if !f.validator.ValidateField(doc, check.FieldID, check.Predicate, check.Message) {
			valid = false
		}
	}
	return valid
}
