// Package jsontime encodes timestamps as zone-less local date-times
// ("2006-01-02T15:04:05"), the format clients of the API exchange.
package jsontime

import (
	"bytes"
	"fmt"
	"time"
)

const Layout = "2006-01-02T15:04:05"

// Location is the zone used to interpret zone-less input and to render output.
// It is set once at startup from configuration.
var Location = time.UTC

type DateTime struct {
	time.Time
}

func From(t time.Time) DateTime { return DateTime{Time: t} }

// Ptr returns nil for the zero time.
func Ptr(t time.Time) *DateTime {
	if t.IsZero() {
		return nil
	}
	d := From(t)
	return &d
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.In(Location).Format(Layout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("jsontime: expected string, got %s", b)
	}
	t, err := Parse(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Parse accepts the zone-less layout (with optional fraction) or RFC3339 and
// returns the instant in UTC.
func Parse(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02T15:04:05.999999999", s, Location); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("jsontime: %q is not %s or RFC3339", s, Layout)
	}
	return t.UTC(), nil
}
