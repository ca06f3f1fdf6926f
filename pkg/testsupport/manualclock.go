package testsupport

import (
	"sort"
	"sync"
	"time"

	"github.com/goliatone/go-pagewire/pkg/schedule"
)

// ManualClock implements schedule.Clock with virtual time. Tests call Advance
// to run due callbacks in schedule order without sleeping. Callbacks may
// schedule further timers; Advance keeps draining until the target instant is
// reached, which covers the nested fade-then-remove timeline.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	clock   *ManualClock
	due     time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

// NewManualClock returns a clock positioned at instant zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

var _ schedule.Clock = (*ManualClock)(nil)

// AfterFunc schedules fn to run when virtual time reaches now+d.
func (c *ManualClock) AfterFunc(d time.Duration, fn func()) schedule.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d < 0 {
		d = 0
	}
	timer := &manualTimer{
		clock: c,
		due:   c.now + d,
		seq:   c.seq,
		fn:    fn,
	}
	c.seq++
	c.pending = append(c.pending, timer)
	return timer
}

// Stop cancels the timer, reporting whether the callback had not yet fired.
func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves virtual time forward by d, firing every callback that falls
// due along the way in due-time order (registration order on ties).
func (c *ManualClock) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	c.mu.Lock()
	target := c.now + d
	for {
		next := c.nextDueLocked(target)
		if next == nil {
			break
		}
		c.now = next.due
		next.fired = true
		c.mu.Unlock()
		next.fn()
		c.mu.Lock()
	}
	c.now = target
	c.mu.Unlock()
}

// Elapsed returns the current virtual instant.
func (c *ManualClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) nextDueLocked(target time.Duration) *manualTimer {
	live := c.pending[:0]
	for _, timer := range c.pending {
		if !timer.fired && !timer.stopped {
			live = append(live, timer)
		}
	}
	c.pending = live
	if len(c.pending) == 0 {
		return nil
	}

	sort.SliceStable(c.pending, func(i, j int) bool {
		if c.pending[i].due == c.pending[j].due {
			return c.pending[i].seq < c.pending[j].seq
		}
		return c.pending[i].due < c.pending[j].due
	})

	if c.pending[0].due > target {
		return nil
	}
	return c.pending[0]
}
