package pond

import (
	"strconv"
	"time"
)

// Key is the ordering/identity component of an Event: a time instant, a
// time interval, or an ordinal index.
//
// String returns the canonical serialization used by the Collection's key
// index. Each variant carries a distinct prefix ("t:", "r:", "i:") so the
// serialization is injective across variants; two keys of the same variant
// collide only when their underlying instants (at millisecond resolution)
// or ordinals are equal.
type Key interface {
	String() string
	Timestamp() time.Time
	Begin() time.Time
	End() time.Time
}

// TimeKey keys an event to a single instant.
type TimeKey struct {
	t time.Time
}

func NewTimeKey(t time.Time) TimeKey {
	return TimeKey{t: t}
}

func (k TimeKey) String() string {
	return "t:" + strconv.FormatInt(k.t.UnixMilli(), 10)
}

func (k TimeKey) Timestamp() time.Time { return k.t }
func (k TimeKey) Begin() time.Time     { return k.t }
func (k TimeKey) End() time.Time       { return k.t }

// RangeKey keys an event to a time interval. Ordering (SortByKey,
// IsChronological) uses the interval start.
type RangeKey struct {
	r TimeRange
}

func NewRangeKey(tr TimeRange) RangeKey {
	return RangeKey{r: tr}
}

func (k RangeKey) String() string {
	return "r:" + strconv.FormatInt(k.r.Begin().UnixMilli(), 10) +
		"," + strconv.FormatInt(k.r.End().UnixMilli(), 10)
}

func (k RangeKey) Timestamp() time.Time { return k.r.Begin() }
func (k RangeKey) Begin() time.Time     { return k.r.Begin() }
func (k RangeKey) End() time.Time       { return k.r.End() }

// Range returns the underlying interval.
func (k RangeKey) Range() TimeRange { return k.r }

// IndexKey keys an event to an ordinal position. Its timestamp maps the
// ordinal onto the millisecond epoch scale so ordinal order and timestamp
// order agree.
type IndexKey struct {
	n int64
}

func NewIndexKey(n int64) IndexKey {
	return IndexKey{n: n}
}

func (k IndexKey) String() string {
	return "i:" + strconv.FormatInt(k.n, 10)
}

// Ordinal returns the index value.
func (k IndexKey) Ordinal() int64 { return k.n }

func (k IndexKey) Timestamp() time.Time { return time.UnixMilli(k.n) }
func (k IndexKey) Begin() time.Time     { return k.Timestamp() }
func (k IndexKey) End() time.Time       { return k.Timestamp() }
