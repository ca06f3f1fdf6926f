package schedule

import "time"

// Timer is the handle returned by Clock.AfterFunc. Stop reports whether the
// call prevented the callback from running. The dismiss timeline never stops
// its timers; the handle exists so tests and future callers can.
type Timer interface {
	Stop() bool
}

// Clock schedules deferred callbacks against elapsed wall-clock time. The
// production implementation delegates to time.AfterFunc; tests substitute a
// manual clock to advance time deterministically.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type systemClock struct{}

type systemTimer struct {
	timer *time.Timer
}

func (t systemTimer) Stop() bool {
	return t.timer.Stop()
}

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return systemTimer{timer: time.AfterFunc(d, fn)}
}

// System returns the wall-clock backed Clock.
func System() Clock {
	return systemClock{}
}
