package dom

import internaldom "github.com/goliatone/go-pagewire/internal/dom"

// Kind re-exports the internal element kind enumeration.
type Kind = internaldom.Kind

const (
	KindMessage      = internaldom.KindMessage
	KindTextInput    = internaldom.KindTextInput
	KindSelect       = internaldom.KindSelect
	KindTextArea     = internaldom.KindTextArea
	KindErrorDisplay = internaldom.KindErrorDisplay
	KindGeneric      = internaldom.KindGeneric
)

type Element = internaldom.Element
type Document = internaldom.Document
type InputListener = internaldom.InputListener

// NewElement re-exports the internal element constructor.
func NewElement(id string, kind Kind) Element {
	return internaldom.NewElement(id, kind)
}

// NewDocument re-exports the internal document constructor.
func NewDocument(elements ...Element) *Document {
	return internaldom.NewDocument(elements...)
}
