// Package schedule abstracts deferred execution behind a Clock so the
// fire-and-forget timers driving notice dismissal can run against real time
// in production and against a manual clock in tests.
package schedule
