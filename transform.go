package pond

import (
	"math"
	"sort"
)

// All transforms derive a new sequence and reassemble it through
// replaceAll; positions are renumbered and the index rebuilt. The receiver
// is never modified.

// Slice returns the sub-collection for positions [begin, end). Bounds are
// clamped to the sequence.
func (c Collection) Slice(begin, end int) Collection {
	if begin < 0 {
		begin = 0
	}
	if end > len(c.sequence) {
		end = len(c.sequence)
	}
	if begin >= end {
		return c.replaceAll([]Event{})
	}
	out := make([]Event, end-begin)
	copy(out, c.sequence[begin:end])
	return c.replaceAll(out)
}

// Rest drops the first event.
func (c Collection) Rest() Collection {
	return c.Slice(1, len(c.sequence))
}

// TakeLast keeps the final n events.
func (c Collection) TakeLast(n int) Collection {
	return c.Slice(len(c.sequence)-n, len(c.sequence))
}

// SortBy stably sorts ascending by the numeric value at the field path.
// Events without a usable value sort before all valued ones.
func (c Collection) SortBy(path string) Collection {
	out := c.Events()
	sort.SliceStable(out, func(i, j int) bool {
		vi, oki := out[i].Float(path)
		vj, okj := out[j].Float(path)
		if !oki {
			vi = math.Inf(-1)
		}
		if !okj {
			vj = math.Inf(-1)
		}
		return vi < vj
	})
	return c.replaceAll(out)
}

// SortByKey stably sorts ascending by key timestamp (interval keys by
// their start).
func (c Collection) SortByKey() Collection {
	out := c.Events()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp().Before(out[j].Timestamp())
	})
	return c.replaceAll(out)
}

// Map applies fn to every event in order.
func (c Collection) Map(fn func(Event) Event) Collection {
	out := make([]Event, len(c.sequence))
	for i, e := range c.sequence {
		out[i] = fn(e)
	}
	return c.replaceAll(out)
}

// FlatMap applies fn to every event in order, flattening the zero-or-more
// outputs per input into one sequence.
func (c Collection) FlatMap(fn func(Event) []Event) Collection {
	out := make([]Event, 0, len(c.sequence))
	for _, e := range c.sequence {
		out = append(out, fn(e)...)
	}
	return c.replaceAll(out)
}

// MapKeys replaces every event's key via fn, preserving data. This may
// change the key variant of the whole collection.
func (c Collection) MapKeys(fn func(Key) Key) Collection {
	out := make([]Event, len(c.sequence))
	for i, e := range c.sequence {
		out[i] = e.WithKey(fn(e.Key()))
	}
	return c.replaceAll(out)
}

// IsChronological reports whether, scanning in order, no event's key
// timestamp is strictly earlier than its predecessor's. Equal timestamps
// keep chronological status; an empty or single-event collection is
// chronological.
func (c Collection) IsChronological() bool {
	for i := 1; i < len(c.sequence); i++ {
		if c.sequence[i].Timestamp().Before(c.sequence[i-1].Timestamp()) {
			return false
		}
	}
	return true
}

// Timerange returns the interval from the minimum Begin to the maximum End
// across all events, with ok=false on an empty collection.
func (c Collection) Timerange() (TimeRange, bool) {
	if len(c.sequence) == 0 {
		return TimeRange{}, false
	}
	min := c.sequence[0].Begin()
	max := c.sequence[0].End()
	for _, e := range c.sequence[1:] {
		if e.Begin().Before(min) {
			min = e.Begin()
		}
		if e.End().After(max) {
			max = e.End()
		}
	}
	return NewTimeRange(min, max), true
}
