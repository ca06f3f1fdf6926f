package form

import "github.com/goliatone/go-pagewire/pkg/dom"

// ClearOnInput registers a ready hook that wires every editable control
// present at page-ready time with a listener clearing stale error
// presentation on each value change. The wiring is a one-shot snapshot:
// controls inserted after the ready signal are not covered.
func (v *Validator) ClearOnInput(doc *dom.Document) {
	if doc == nil {
		return
	}
	doc.OnReady(func() {
		for _, element := range doc.Editable() {
			id := element.ID
			doc.OnInput(id, func(string) {
				v.ClearError(doc, id)
			})
		}
	})
}

// ClearOnInput wires error clearing with the convention-only default
// Validator.
func ClearOnInput(doc *dom.Document) {
	(&Validator{}).ClearOnInput(doc)
}
