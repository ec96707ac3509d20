// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package catalog

import (
	"strings"
	"time"

	"github.com/creachadair/jsonfg/feature"
	"github.com/creachadair/jsonfg/pointer"
	"github.com/creachadair/jsonfg/rule"
)

var timePointer = pointer.New("time")

const (
	unbounded = ".."
	day       = 24 * time.Hour
)

// An instant is a parsed date or timestamp. A date denotes the UTC day
// beginning at t.
type instant struct {
	t      time.Time
	isDate bool
}

// parseInstant parses s as a full-date (YYYY-MM-DD) or as an RFC 3339
// timestamp in UTC. It reports false if s matches neither.
func parseInstant(s string) (instant, bool) {
	if d, ok := parseDate(s); ok {
		return instant{t: d, isDate: true}, true
	}
	if t, ok := parseTimestamp(s); ok {
		return instant{t: t}, true
	}
	return instant{}, false
}

func parseDate(s string) (time.Time, bool) {
	if len(s) != len(time.DateOnly) {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(time.DateOnly, s, time.UTC)
	return d, err == nil
}

func parseTimestamp(s string) (time.Time, bool) {
	if !strings.HasSuffix(s, "Z") || strings.IndexByte(s, 'T') != len(time.DateOnly) {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// dayOf returns the start of the UTC day containing t.
func dayOf(t time.Time) time.Time { return t.UTC().Truncate(day) }

// A bound is one side of an interval. An open bound has no instant.
type bound struct {
	instant
	open bool
}

// parseInterval parses a two-element interval of strings. It reports false if
// v is not such an interval, or if either bound is neither "..", a date, nor
// a timestamp.
func parseInterval(v []any) (lo, hi bound, ok bool) {
	if len(v) != 2 {
		return lo, hi, false
	}
	parse := func(e any) (bound, bool) {
		s, ok := e.(string)
		if !ok {
			return bound{}, false
		} else if s == unbounded {
			return bound{open: true}, true
		}
		in, ok := parseInstant(s)
		return bound{instant: in}, ok
	}
	lo, lok := parse(v[0])
	hi, hok := parse(v[1])
	return lo, hi, lok && hok
}

func intervalOrdering() rule.Rule {
	return rule.Rule{
		Name:        "interval-ordering",
		Description: "The bounds of a time interval have the same granularity, and the start is not after the end",
		Feature: func(f *feature.Feature, _ bool) *rule.Violation {
			tm, ok := f.Time()
			if !ok {
				return nil
			}
			iv, ok := tm.Array("interval")
			if !ok {
				return nil
			}
			lo, hi, ok := parseInterval(iv)
			if !ok || lo.open || hi.open {
				return nil
			}
			if lo.isDate != hi.isDate {
				return rule.At(timePointer, "interval bounds must both be dates or both be timestamps")
			}
			if lo.t.After(hi.t) {
				return rule.At(timePointer, "interval start %q is after its end %q", iv[0], iv[1])
			}
			return nil
		},
	}
}

// dateInInterval reports whether the UTC day d falls within the interval.
// A date bound is compared with d directly. A timestamp bound is satisfied if
// any part of the day lies on the correct side of it.
func dateInInterval(d time.Time, lo, hi bound) bool {
	switch {
	case lo.open:
	case lo.isDate && d.Before(lo.t):
		return false
	case !lo.isDate && !d.Add(day).After(lo.t):
		return false
	}
	switch {
	case hi.open:
	case hi.isDate && d.After(hi.t):
		return false
	case !hi.isDate && d.After(hi.t):
		return false
	}
	return true
}

// timestampInInterval reports whether the timestamp t falls within the
// interval. A date bound is compared with the day of t, and a timestamp bound
// with t itself.
func timestampInInterval(t time.Time, lo, hi bound) bool {
	at := func(b bound) time.Time {
		if b.isDate {
			return dayOf(t)
		}
		return t
	}
	if !lo.open && at(lo).Before(lo.t) {
		return false
	}
	if !hi.open && at(hi).After(hi.t) {
		return false
	}
	return true
}

func instantAndInterval() rule.Rule {
	return rule.Rule{
		Name:        "instant-and-interval",
		Description: "The date, timestamp, and interval of a feature's time are consistent with each other",
		Feature: func(f *feature.Feature, _ bool) *rule.Violation {
			tm, ok := f.Time()
			if !ok {
				return nil
			}
			ds, hasDate := tm.Text("date")
			date, hasDate := parseDateIf(ds, hasDate)
			ts, hasStamp := tm.Text("timestamp")
			stamp, hasStamp := parseTimestampIf(ts, hasStamp)
			iv, hasIval := tm.Array("interval")
			lo, hi, hasIval := parseIntervalIf(iv, hasIval)

			if hasDate && hasStamp && !dayOf(stamp).Equal(date) {
				return rule.At(timePointer, "timestamp %q does not fall on date %q", ts, ds)
			}
			if hasStamp && hasIval && !timestampInInterval(stamp, lo, hi) {
				return rule.At(timePointer, "timestamp %q is outside the interval", ts)
			}
			if hasDate && hasIval && !dateInInterval(date, lo, hi) {
				return rule.At(timePointer, "date %q is outside the interval", ds)
			}
			return nil
		},
	}
}

func parseDateIf(s string, ok bool) (time.Time, bool) {
	if !ok {
		return time.Time{}, false
	}
	return parseDate(s)
}

func parseTimestampIf(s string, ok bool) (time.Time, bool) {
	if !ok {
		return time.Time{}, false
	}
	return parseTimestamp(s)
}

func parseIntervalIf(v []any, ok bool) (lo, hi bound, _ bool) {
	if !ok {
		return lo, hi, false
	}
	return parseInterval(v)
}
