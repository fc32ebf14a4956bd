// Package localtime renders wall-clock time as it reads in a fixed zone.
package localtime

import (
	"errors"
	"fmt"
	"time"
)

// DefaultZone is the zone shown on the splash screen.
const DefaultZone = "Asia/Kolkata"

const (
	dateLayout = "02:01:2006"
	timeLayout = "15:04:05"
)

// ErrUnknownZone is returned when the zone database has no such location.
var ErrUnknownZone = errors.New("unknown time zone")

// Reading is one formatted instant: date as day:month:year and time as
// hour:minute:second on a 24-hour clock.
type Reading struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// Formatter projects instants into one zone.
type Formatter struct {
	loc *time.Location
}

// NewFormatter loads zone. An empty or unknown zone is an error; there is
// no fallback to UTC or the host's local zone.
func NewFormatter(zone string) (*Formatter, error) {
	if zone == "" || zone == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, zone)
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownZone, zone, err)
	}
	return &Formatter{loc: loc}, nil
}

// Zone returns the location name.
func (f *Formatter) Zone() string {
	return f.loc.String()
}

// Format renders t in the formatter's zone.
func (f *Formatter) Format(t time.Time) Reading {
	local := t.In(f.loc)
	return Reading{
		Date: local.Format(dateLayout),
		Time: local.Format(timeLayout),
	}
}
