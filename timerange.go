package pond

import (
	"fmt"
	"time"
)

// TimeRange is a half-open-agnostic interval [begin, end] used both as an
// event key (RangeKey) and as the result of Collection.Timerange.
type TimeRange struct {
	begin time.Time
	end   time.Time
}

// NewTimeRange builds a range from two instants. Reversed arguments are
// swapped so begin never follows end.
func NewTimeRange(begin, end time.Time) TimeRange {
	if end.Before(begin) {
		begin, end = end, begin
	}
	return TimeRange{begin: begin, end: end}
}

func (tr TimeRange) Begin() time.Time {
	return tr.begin
}

func (tr TimeRange) End() time.Time {
	return tr.end
}

func (tr TimeRange) Duration() time.Duration {
	return tr.end.Sub(tr.begin)
}

// Contains reports whether t falls within the range, inclusive of both ends.
func (tr TimeRange) Contains(t time.Time) bool {
	return !t.Before(tr.begin) && !t.After(tr.end)
}

// Extend grows the range to enclose the other range.
func (tr TimeRange) Extend(other TimeRange) TimeRange {
	out := tr
	if other.begin.Before(out.begin) {
		out.begin = other.begin
	}
	if other.end.After(out.end) {
		out.end = other.end
	}
	return out
}

func (tr TimeRange) String() string {
	return fmt.Sprintf("[%d,%d]", tr.begin.UnixMilli(), tr.end.UnixMilli())
}

// ToJSON returns the plain structural form: a [begin, end] pair in ms.
func (tr TimeRange) ToJSON() [2]int64 {
	return [2]int64{tr.begin.UnixMilli(), tr.end.UnixMilli()}
}
