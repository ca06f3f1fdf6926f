package dom

import "strings"

// Kind classifies the elements a page document can hold. The three editable
// kinds are the only ones input wiring attaches to.
type Kind string

const (
	KindMessage      Kind = "message"
	KindTextInput    Kind = "text-input"
	KindSelect       Kind = "select"
	KindTextArea     Kind = "textarea"
	KindErrorDisplay Kind = "error-display"
	KindGeneric      Kind = "generic"
)

// Editable reports whether elements of this kind accept user input events.
func (k Kind) Editable() bool {
	switch k {
	case KindTextInput, KindSelect, KindTextArea:
		return true
	default:
		return false
	}
}

// Element is a transient page node. Documents hand out copies; mutations go
// through Document methods so concurrent timers and listeners stay safe.
type Element struct {
	ID         string            `json:"id"`
	Kind       Kind              `json:"kind"`
	Classes    []string          `json:"classes,omitempty"`
	Text       string            `json:"text,omitempty"`
	Value      string            `json:"value,omitempty"`
	Opacity    float64           `json:"opacity"`
	Transition string            `json:"transition,omitempty"`
	Attrs      map[string]string `json:"attrs,omitempty"`
}

// NewElement constructs a fully opaque element with a normalised identifier.
func NewElement(id string, kind Kind) Element {
	return Element{
		ID:      strings.TrimSpace(id),
		Kind:    kind,
		Opacity: 1,
	}
}

// HasClass reports whether the class is present.
func (e Element) HasClass(class string) bool {
	class = strings.TrimSpace(class)
	if class == "" {
		return false
	}
	for _, existing := range e.Classes {
		if existing == class {
			return true
		}
	}
	return false
}

// AddClass appends the class when absent, preserving the existing list. The
// operation is additive so unrelated visual state is never disturbed.
func (e *Element) AddClass(class string) {
	class = strings.TrimSpace(class)
	if class == "" || e.HasClass(class) {
		return
	}
	e.Classes = append(e.Classes, class)
}

// RemoveClass drops the class when present. Removing an absent class is a
// no-op rather than an error.
func (e *Element) RemoveClass(class string) {
	class = strings.TrimSpace(class)
	if class == "" {
		return
	}
	out := e.Classes[:0]
	for _, existing := range e.Classes {
		if existing != class {
			out = append(out, existing)
		}
	}
	if len(out) == 0 {
		e.Classes = nil
		return
	}
	e.Classes = out
}

func (e Element) clone() Element {
	clone := e
	if len(e.Classes) > 0 {
		clone.Classes = append([]string(nil), e.Classes...)
	}
	if len(e.Attrs) > 0 {
		clone.Attrs = make(map[string]string, len(e.Attrs))
		for key, value := range e.Attrs {
			clone.Attrs[key] = value
		}
	}
	return clone
}
