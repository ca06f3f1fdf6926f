package form

import (
	"strings"
	"sync"
)

// ErrorDisplaySuffix is the naming convention tying a field to its error
// display when no explicit binding exists: "<fieldID>-error".
const ErrorDisplaySuffix = "-error"

// Bindings records explicit field to error-display associations. The upstream
// behavior located displays purely by string concatenation; keeping the
// convention as a fallback preserves that contract while letting callers make
// the relationship explicit.
type Bindings struct {
	mu      sync.RWMutex
	targets map[string]string
}

// NewBindings constructs an empty registry.
func NewBindings() *Bindings {
	return &Bindings{targets: make(map[string]string)}
}

// Bind associates a field with an error-display element. Empty identifiers
// are ignored; rebinding a field replaces the previous association.
func (b *Bindings) Bind(fieldID, errorID string) {
	if b == nil {
		return
	}
	fieldID = strings.TrimSpace(fieldID)
	errorID = strings.TrimSpace(errorID)
	if fieldID == "" || errorID == "" {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.targets == nil {
		b.targets = make(map[string]string)
	}
	b.targets[fieldID] = errorID
}

// ErrorDisplayID resolves the error-display identifier for a field: the
// explicit binding when present, the suffix convention otherwise. A nil
// registry resolves purely by convention.
func (b *Bindings) ErrorDisplayID(fieldID string) string {
	fieldID = strings.TrimSpace(fieldID)
	if fieldID == "" {
		return ""
	}
	if b != nil {
		b.mu.RLock()
		target, ok := b.targets[fieldID]
		b.mu.RUnlock()
		if ok {
			return target
		}
	}
	return fieldID + ErrorDisplaySuffix
}
