package notices

import (
	"time"

	"github.com/goliatone/go-pagewire/pkg/dom"
	"github.com/goliatone/go-pagewire/pkg/schedule"
)

// Timing of the dismiss timeline. The delays are fixed: a banner fades after
// FadeDelay and is detached RemoveDelay later. There is no way to pause or
// cancel a schedule once the page-ready snapshot was taken.
const (
	FadeDelay   = 5000 * time.Millisecond
	RemoveDelay = 500 * time.Millisecond

	// FadeTransition is the transition declaration applied together with the
	// opacity change so renderers emit an animated fade.
	FadeTransition = "opacity 0.5s ease"
)

// Option configures a Dismisser before construction.
type Option func(*Dismisser)

// WithClock substitutes the clock driving the timeline. Tests inject a
// manual clock; production uses the system clock.
func WithClock(clock schedule.Clock) Option {
	return func(d *Dismisser) {
		if clock != nil {
			d.clock = clock
		}
	}
}

// Dismisser fades and removes message banners on the fixed timeline.
type Dismisser struct {
	clock schedule.Clock
}

// NewDismisser constructs a Dismisser applying any provided options.
func NewDismisser(options ...Option) *Dismisser {
	dismisser := &Dismisser{clock: schedule.System()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(dismisser)
	}
	return dismisser
}

// AutoDismiss registers a ready hook that snapshots the message elements
// present when the page-ready signal fires and schedules each one's fade and
// removal independently. Banners posted after the signal are never picked up.
func (d *Dismisser) AutoDismiss(doc *dom.Document) {
	if doc == nil {
		return
	}
	doc.OnReady(func() {
		for _, element := range doc.OfKind(dom.KindMessage) {
			d.schedule(doc, element.ID)
		}
	})
}

// schedule arms the two deferred actions for a single banner. A banner that
// was detached in the meantime is skipped; detaching between the fade and the
// removal is equally harmless because Document.Remove tolerates absence.
func (d *Dismisser) schedule(doc *dom.Document, id string) {
	d.clock.AfterFunc(FadeDelay, func() {
		if !doc.Contains(id) {
			return
		}
		doc.SetTransition(id, FadeTransition)
		doc.SetOpacity(id, 0)
		d.clock.AfterFunc(RemoveDelay, func() {
			doc.Remove(id)
		})
	})
}

// AutoDismiss wires the default system-clock Dismisser. Most callers want
// this form; NewDismisser exists for tests and custom clocks.
func AutoDismiss(doc *dom.Document) {
	NewDismisser().AutoDismiss(doc)
}
