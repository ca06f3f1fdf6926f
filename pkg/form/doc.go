// Package form provides the reusable field-validation helper and the
// error-clear-on-input wiring. Validation evaluates a caller-supplied
// predicate against a field's current value and toggles the field's error
// class plus its error display's text; the input wiring optimistically drops
// stale error presentation as soon as the user edits a control, leaving
// re-validation to the caller. Error displays resolve through explicit
// bindings with a "<fieldID>-error" convention fallback. Absence never
// fails: a missing field validates as true, a missing display is skipped.
package form
