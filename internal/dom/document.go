package dom

import (
	"strings"
	"sync"
)

// InputListener receives the element's value after every value-changing
// interaction dispatched through SetValue.
type InputListener func(value string)

// Document is a mutex-guarded collection of elements in insertion order. It
// models the page the behaviors attach to: ready hooks fire once, input
// listeners fire per value change, and every mutation of a missing element
// degrades to a no-op.
type Document struct {
	mu        sync.RWMutex
	order     []string
	elements  map[string]*Element
	listeners map[string][]InputListener

	ready      bool
	readyHooks []func()
}

// NewDocument builds a document seeded with the provided elements. Elements
// with empty or duplicate identifiers are skipped.
func NewDocument(elements ...Element) *Document {
	doc := &Document{
		elements:  make(map[string]*Element),
		listeners: make(map[string][]InputListener),
	}
	for _, element := range elements {
		doc.Insert(element)
	}
	return doc
}

// Insert adds an element to the document. It reports false when the
// identifier is empty or already taken.
func (d *Document) Insert(element Element) bool {
	id := strings.TrimSpace(element.ID)
	if id == "" {
		return false
	}
	element.ID = id

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.elements[id]; exists {
		return false
	}
	stored := element.clone()
	d.elements[id] = &stored
	d.order = append(d.order, id)
	return true
}

// Remove detaches the element from the document. Removing an element that is
// already gone is a no-op, matching the dismiss timeline's requirements.
func (d *Document) Remove(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.elements[id]; !exists {
		return
	}
	delete(d.elements, id)
	delete(d.listeners, id)
	for idx, existing := range d.order {
		if existing == id {
			d.order = append(d.order[:idx], d.order[idx+1:]...)
			break
		}
	}
}

// ByID returns a copy of the element and whether it exists.
func (d *Document) ByID(id string) (Element, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	element, ok := d.elements[id]
	if !ok {
		return Element{}, false
	}
	return element.clone(), true
}

// Contains reports element presence without copying.
func (d *Document) Contains(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.elements[id]
	return ok
}

// Elements returns a snapshot of every element in insertion order.
func (d *Document) Elements() []Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Element, 0, len(d.order))
	for _, id := range d.order {
		if element, ok := d.elements[id]; ok {
			out = append(out, element.clone())
		}
	}
	return out
}

// OfKind returns a snapshot of the elements matching the kind, in insertion
// order. Callers use this to take the one-shot snapshots the wiring relies
// on; elements inserted later are not covered.
func (d *Document) OfKind(kind Kind) []Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []Element
	for _, id := range d.order {
		if element, ok := d.elements[id]; ok && element.Kind == kind {
			out = append(out, element.clone())
		}
	}
	return out
}

// Editable returns a snapshot of every element whose kind accepts input.
func (d *Document) Editable() []Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []Element
	for _, id := range d.order {
		if element, ok := d.elements[id]; ok && element.Kind.Editable() {
			out = append(out, element.clone())
		}
	}
	return out
}

// Update applies fn to the element under the document lock. Missing elements
// are skipped. fn must not call back into the document.
func (d *Document) Update(id string, fn func(*Element)) {
	if fn == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if element, ok := d.elements[id]; ok {
		fn(element)
	}
}

// SetText replaces the element's visible text.
func (d *Document) SetText(id, text string) {
	d.Update(id, func(element *Element) {
		element.Text = text
	})
}

// SetOpacity sets the element's opacity.
func (d *Document) SetOpacity(id string, opacity float64) {
	d.Update(id, func(element *Element) {
		element.Opacity = opacity
	})
}

// SetTransition sets the element's transition declaration.
func (d *Document) SetTransition(id, transition string) {
	d.Update(id, func(element *Element) {
		element.Transition = transition
	})
}

// AddClass adds a class to the element.
func (d *Document) AddClass(id, class string) {
	d.Update(id, func(element *Element) {
		element.AddClass(class)
	})
}

// RemoveClass removes a class from the element.
func (d *Document) RemoveClass(id, class string) {
	d.Update(id, func(element *Element) {
		element.RemoveClass(class)
	})
}

// OnInput registers a listener for value changes on the element. Listeners
// registered against a missing element are dropped.
func (d *Document) OnInput(id string, listener InputListener) {
	if listener == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.elements[id]; !ok {
		return
	}
	d.listeners[id] = append(d.listeners[id], listener)
}

// SetValue stores the element's new value and dispatches its input listeners
// in registration order. Listeners run outside the document lock so they can
// mutate the document.
func (d *Document) SetValue(id, value string) {
	d.mu.Lock()
	element, ok := d.elements[id]
	if !ok {
		d.mu.Unlock()
		return
	}
	element.Value = value
	pending := append([]InputListener(nil), d.listeners[id]...)
	d.mu.Unlock()

	for _, listener := range pending {
		listener(value)
	}
}

// OnReady registers a hook for the page-ready signal. Hooks registered after
// the signal already fired run immediately, mirroring a page that finished
// loading before the script attached.
func (d *Document) OnReady(hook func()) {
	if hook == nil {
		return
	}
	d.mu.Lock()
	if d.ready {
		d.mu.Unlock()
		hook()
		return
	}
	d.readyHooks = append(d.readyHooks, hook)
	d.mu.Unlock()
}

// Ready fires the page-ready signal exactly once, running hooks in
// registration order. Subsequent calls are no-ops.
func (d *Document) Ready() {
	d.mu.Lock()
	if d.ready {
		d.mu.Unlock()
		return
	}
	d.ready = true
	hooks := d.readyHooks
	d.readyHooks = nil
	d.mu.Unlock()

	for _, hook := range hooks {
		hook()
	}
}

// IsReady reports whether the ready signal fired.
func (d *Document) IsReady() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.ready
}
