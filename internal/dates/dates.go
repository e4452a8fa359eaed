// Package dates normalizes the heterogeneous date values found in the legacy
// project tracking tables. Columns hold native date/time values, ISO strings,
// SQL-style strings, RFC 1123 strings, and MySQL-era zero-date sentinels; the
// normalizer maps all of them onto a single canonical form or explicit absence.
package dates

import (
	"database/sql"
	"strings"
	"time"
)

const (
	// Timestamp is the canonical full timestamp layout.
	Timestamp = "2006-01-02T15:04:05"
	// DateOnly is the canonical date-only layout.
	DateOnly = "2006-01-02"
)

// inputLayouts are the accepted textual formats, tried in order.
// First match wins.
var inputLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC1123,
}

// ToISO converts a raw database date value to the canonical timestamp form.
// Returns nil for absent values, zero-date sentinels, and strings in no
// recognized format. It never fails: an unparseable value is simply absent.
func ToISO(v interface{}) *string {
	switch d := v.(type) {
	case nil:
		return nil
	case time.Time:
		return fromTime(d)
	case *time.Time:
		if d == nil {
			return nil
		}
		return fromTime(*d)
	case string:
		return fromString(d)
	case *string:
		if d == nil {
			return nil
		}
		return fromString(*d)
	case []byte:
		return fromString(string(d))
	case sql.NullString:
		if !d.Valid {
			return nil
		}
		return fromString(d.String)
	case sql.NullTime:
		if !d.Valid {
			return nil
		}
		return fromTime(d.Time)
	default:
		return nil
	}
}

// ToISODate derives the date-only form from the same normalization. If the
// full normalization yields no value, so does this.
func ToISODate(v interface{}) *string {
	full := ToISO(v)
	if full == nil {
		return nil
	}
	date := (*full)[:len(DateOnly)]
	return &date
}

func fromTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(Timestamp)
	return &s
}

func fromString(raw string) *string {
	s := strings.TrimSpace(raw)
	switch s {
	case "", "0000-00-00", "0000-00-00 00:00:00":
		return nil
	}
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			out := t.Format(Timestamp)
			return &out
		}
	}
	return nil
}
