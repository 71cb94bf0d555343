package clock

import (
	"fmt"
	"time"
	_ "time/tzdata" // zone lookup must work on hosts without a tz database
)

// Clock produces wall-clock timestamps in a fixed target timezone,
// independent of the host machine's local zone.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// New creates a Clock for the given IANA zone name (e.g. "Europe/Kyiv").
// A named zone keeps seasonal clock changes correct, unlike a fixed offset.
func New(zone string) (*Clock, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", zone, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// NewAt creates a Clock with an injected time source, for tests.
func NewAt(zone string, now func() time.Time) (*Clock, error) {
	c, err := New(zone)
	if err != nil {
		return nil, err
	}
	c.now = now
	return c, nil
}

// Stamp returns the current date and time as they read on a wall clock in
// the target zone, formatted YYYY-MM-DD and HH:MM:SS.
func (c *Clock) Stamp() (date, clock string) {
	t := c.now().In(c.loc)
	return t.Format("2006-01-02"), t.Format("15:04:05")
}
