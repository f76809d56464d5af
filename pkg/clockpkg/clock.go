// Package clockpkg provides swappable time sources and elapsed-day arithmetic.
package clockpkg

import (
	"errors"
	"sync"
	"time"
)

// Day is the length of one accrual day.
const Day = 24 * time.Hour

// ErrInvalidRange indicates that the end instant precedes the start instant.
var ErrInvalidRange = errors.New("invalid range: end precedes start")

// Clock supplies the current instant and counts elapsed days.
type Clock interface {
	Now() time.Time
	DaysBetween(start, end time.Time) (int, error)
	DaysSince(start time.Time) (int, error)
}

// DaysBetween returns the number of whole 24-hour periods between start and end.
//
// The count is truncated and ignores calendar and DST boundaries:
// 10 days and 1 hour is 10.
func DaysBetween(start, end time.Time) (int, error) {
	if start.After(end) {
		return 0, ErrInvalidRange
	}

	return int(end.Sub(start) / Day), nil
}

// System is a Clock backed by the wall clock.
type System struct{}

// NewSystem returns wall clock.
func NewSystem() System {
	return System{}
}

// Now returns the current local time.
func (System) Now() time.Time {
	return time.Now()
}

// DaysBetween returns whole days between start and end.
func (System) DaysBetween(start, end time.Time) (int, error) {
	return DaysBetween(start, end)
}

// DaysSince returns whole days between start and now.
func (c System) DaysSince(start time.Time) (int, error) {
	return DaysBetween(start, c.Now())
}

// Fake is a Clock whose current instant only moves when told to.
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

// NewFake returns a Fake clock set to now.
func NewFake(now time.Time) *Fake {
	return &Fake{now: now}
}

// Now returns the instant the clock is set to.
func (c *Fake) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

// Set moves the clock to t.
func (c *Fake) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d.
func (c *Fake) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// AdvanceDays moves the clock forward by n days.
func (c *Fake) AdvanceDays(n int) {
	c.Advance(time.Duration(n) * Day)
}

// DaysBetween returns whole days between start and end.
func (c *Fake) DaysBetween(start, end time.Time) (int, error) {
	return DaysBetween(start, end)
}

// DaysSince returns whole days between start and the fake instant.
func (c *Fake) DaysSince(start time.Time) (int, error) {
	return DaysBetween(start, c.Now())
}
