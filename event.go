package pond

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Event is a single keyed record: a Key plus a mapping from (possibly
// nested) field names to values. Events are value-like; no Collection
// operation ever mutates one in place.
type Event struct {
	key  Key
	data map[string]any
}

// NewEvent creates an instant-keyed event.
func NewEvent(t time.Time, data map[string]any) Event {
	return Event{key: NewTimeKey(t), data: data}
}

// NewRangeEvent creates an interval-keyed event.
func NewRangeEvent(tr TimeRange, data map[string]any) Event {
	return Event{key: NewRangeKey(tr), data: data}
}

// NewIndexedEvent creates an ordinal-keyed event.
func NewIndexedEvent(n int64, data map[string]any) Event {
	return Event{key: NewIndexKey(n), data: data}
}

// NewKeyedEvent creates an event with an explicit key.
func NewKeyedEvent(k Key, data map[string]any) Event {
	return Event{key: k, data: data}
}

func (e Event) Key() Key             { return e.key }
func (e Event) Timestamp() time.Time { return e.key.Timestamp() }
func (e Event) Begin() time.Time     { return e.key.Begin() }
func (e Event) End() time.Time       { return e.key.End() }

// Data returns a shallow copy of the event's field map. Nested maps are
// shared; callers must treat them as read-only.
func (e Event) Data() map[string]any {
	out := make(map[string]any, len(e.data))
	for k, v := range e.data {
		out[k] = v
	}
	return out
}

// Get reads the value at a dotted field path ("a.b.c"), traversing nested
// maps. Returns nil if any path component is absent.
func (e Event) Get(path string) any {
	parts := strings.Split(path, ".")
	var cur any = e.data
	for _, p := range parts {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur, ok = m[p]
		if !ok {
			return nil
		}
	}
	return cur
}

// Float reads the value at path coerced to float64. The second return is
// false when the field is absent, non-numeric, or NaN.
func (e Event) Float(path string) (float64, bool) {
	v := e.Get(path)
	if v == nil {
		return math.NaN(), false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) {
		return math.NaN(), false
	}
	return f, true
}

// IsValid reports whether the field at path holds a usable value: present,
// non-nil, and not NaN when numeric.
func (e Event) IsValid(path string) bool {
	v := e.Get(path)
	if v == nil {
		return false
	}
	if f, err := cast.ToFloat64E(v); err == nil {
		return !math.IsNaN(f)
	}
	return true
}

// WithKey returns a copy of the event carrying a different key.
func (e Event) WithKey(k Key) Event {
	return Event{key: k, data: e.data}
}

// WithData returns a copy of the event carrying different data.
func (e Event) WithData(data map[string]any) Event {
	return Event{key: e.key, data: data}
}

// ToJSON returns the plain structural form of the event: the key under a
// variant-specific name ("time" ms, "timerange" pair, or "index") plus the
// field map.
func (e Event) ToJSON() map[string]any {
	out := map[string]any{"data": e.data}
	switch k := e.key.(type) {
	case TimeKey:
		out["time"] = k.Timestamp().UnixMilli()
	case RangeKey:
		out["timerange"] = k.Range().ToJSON()
	case IndexKey:
		out["index"] = k.Ordinal()
	default:
		out["key"] = e.key.String()
	}
	return out
}

func (e Event) String() string {
	b, _ := json.Marshal(e.ToJSON())
	return string(b)
}
