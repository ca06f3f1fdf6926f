package testsupport

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestManualClock_FiresInDueOrder(t *testing.T) {
	clock := NewManualClock()

	var calls []string
	clock.AfterFunc(2*time.Second, func() { calls = append(calls, "late") })
	clock.AfterFunc(time.Second, func() { calls = append(calls, "early") })

	clock.Advance(3 * time.Second)

	if diff := cmp.Diff([]string{"early", "late"}, calls); diff != "" {
		t.Fatalf("call order mismatch (-want +got):\n%s", diff)
	}
	if got := clock.Elapsed(); got != 3*time.Second {
		t.Fatalf("elapsed = %v, want %v", got, 3*time.Second)
	}
}

func TestManualClock_NestedSchedulingDrains(t *testing.T) {
	clock := NewManualClock()

	var calls []string
	clock.AfterFunc(5*time.Second, func() {
		calls = append(calls, "fade")
		clock.AfterFunc(500*time.Millisecond, func() {
			calls = append(calls, "remove")
		})
	})

	clock.Advance(5 * time.Second)
	if diff := cmp.Diff([]string{"fade"}, calls); diff != "" {
		t.Fatalf("after 5s (-want +got):\n%s", diff)
	}

	clock.Advance(499 * time.Millisecond)
	if len(calls) != 1 {
		t.Fatalf("remove fired early: %v", calls)
	}

	clock.Advance(time.Millisecond)
	if diff := cmp.Diff([]string{"fade", "remove"}, calls); diff != "" {
		t.Fatalf("after 5.5s (-want +got):\n%s", diff)
	}
}

func TestManualClock_StopPreventsCallback(t *testing.T) {
	clock := NewManualClock()

	fired := false
	timer := clock.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Fatal("expected Stop to report cancellation")
	}
	if timer.Stop() {
		t.Fatal("expected second Stop to report false")
	}

	clock.Advance(2 * time.Second)
	if fired {
		t.Fatal("stopped timer fired")
	}
}
