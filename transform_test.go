package pond_test

import (
	"testing"

	. "github.com/2lambda123/esnet-pond"
)

func collectionOf(values ...float64) Collection {
	c := NewCollection()
	for i, v := range values {
		c = c.Insert(valueEvent(i, v))
	}
	return c
}

func values(t *testing.T, c Collection) []float64 {
	t.Helper()
	out := make([]float64, 0, c.Size())
	for _, e := range c.Events() {
		v, _ := e.Float("value")
		out = append(out, v)
	}
	return out
}

func equalValues(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSlice(t *testing.T) {
	c := collectionOf(1, 2, 3, 4, 5)

	cases := []struct {
		name       string
		begin, end int
		want       []float64
	}{
		{"middle", 1, 4, []float64{2, 3, 4}},
		{"full", 0, 5, []float64{1, 2, 3, 4, 5}},
		{"clamped", -2, 99, []float64{1, 2, 3, 4, 5}},
		{"empty", 3, 3, []float64{}},
		{"inverted", 4, 2, []float64{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := values(t, c.Slice(tc.begin, tc.end))
			if !equalValues(got, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestRestAndTakeLast(t *testing.T) {
	c := collectionOf(1, 2, 3, 4)

	if got := values(t, c.Rest()); !equalValues(got, []float64{2, 3, 4}) {
		t.Errorf("Rest: expected [2 3 4], got %v", got)
	}
	if got := values(t, c.TakeLast(2)); !equalValues(got, []float64{3, 4}) {
		t.Errorf("TakeLast: expected [3 4], got %v", got)
	}
	if got := values(t, c.TakeLast(99)); !equalValues(got, []float64{1, 2, 3, 4}) {
		t.Errorf("TakeLast overshoot: expected all, got %v", got)
	}
}

func TestSortByIsStableAscending(t *testing.T) {
	c := NewCollection().
		Insert(NewEvent(at(0), map[string]any{"value": 3.0, "tag": "a"})).
		Insert(NewEvent(at(1), map[string]any{"value": 1.0, "tag": "b"})).
		Insert(NewEvent(at(2), map[string]any{"value": 3.0, "tag": "c"})).
		Insert(NewEvent(at(3), map[string]any{"value": 2.0, "tag": "d"}))

	sorted := c.SortBy("value")

	if got := values(t, sorted); !equalValues(got, []float64{1, 2, 3, 3}) {
		t.Fatalf("expected [1 2 3 3], got %v", got)
	}
	// Equal values keep original relative order.
	e2, _ := sorted.At(2)
	e3, _ := sorted.At(3)
	if e2.Get("tag") != "a" || e3.Get("tag") != "c" {
		t.Error("expected stable order for equal values")
	}
}

func TestSortByKey(t *testing.T) {
	c := NewCollection().
		Insert(valueEvent(2, 3)).
		Insert(valueEvent(0, 1)).
		Insert(valueEvent(1, 2))

	sorted := c.SortByKey()

	if got := values(t, sorted); !equalValues(got, []float64{1, 2, 3}) {
		t.Errorf("expected [1 2 3], got %v", got)
	}
	if !sorted.IsChronological() {
		t.Error("expected chronological after SortByKey")
	}
}

func TestSortByKeyUsesIntervalStart(t *testing.T) {
	c := NewCollection().
		Insert(NewRangeEvent(NewTimeRange(at(5), at(6)), map[string]any{"value": 2.0})).
		Insert(NewRangeEvent(NewTimeRange(at(1), at(10)), map[string]any{"value": 1.0}))

	sorted := c.SortByKey()
	if got := values(t, sorted); !equalValues(got, []float64{1, 2}) {
		t.Errorf("expected interval-start ordering [1 2], got %v", got)
	}
}

func TestMap(t *testing.T) {
	c := collectionOf(1, 2, 3)

	doubled := c.Map(func(e Event) Event {
		v, _ := e.Float("value")
		return e.WithData(map[string]any{"value": v * 2})
	})

	if got := values(t, doubled); !equalValues(got, []float64{2, 4, 6}) {
		t.Errorf("expected [2 4 6], got %v", got)
	}
}

func TestFlatMap(t *testing.T) {
	c := collectionOf(1, 2, 3)

	// Drop odd values, duplicate even ones.
	out := c.FlatMap(func(e Event) []Event {
		v, _ := e.Float("value")
		if int(v)%2 == 1 {
			return nil
		}
		return []Event{e, e}
	})

	if got := values(t, out); !equalValues(got, []float64{2, 2}) {
		t.Errorf("expected [2 2], got %v", got)
	}
	checkIndex(t, out)
}

func TestMapKeysChangesKeyVariant(t *testing.T) {
	c := collectionOf(1, 2, 3)

	n := int64(0)
	indexed := c.MapKeys(func(k Key) Key {
		n++
		return NewIndexKey(n)
	})

	if indexed.Size() != 3 {
		t.Fatalf("expected size 3, got %d", indexed.Size())
	}
	if len(indexed.AtKey(NewIndexKey(2))) != 1 {
		t.Error("expected event at remapped ordinal key")
	}
	e, _ := indexed.At(1)
	if v, _ := e.Float("value"); v != 2 {
		t.Errorf("expected data preserved across key remap, got %g", v)
	}
	checkIndex(t, indexed)
}

func TestIsChronological(t *testing.T) {
	ties := FromEvents([]Event{valueEvent(0, 1), valueEvent(0, 2), valueEvent(1, 3)})
	if !ties.IsChronological() {
		t.Error("equal timestamps must not break chronological status")
	}

	backwards := FromEvents([]Event{valueEvent(1, 1), valueEvent(0, 2)})
	if backwards.IsChronological() {
		t.Error("expected false for backwards sequence")
	}

	if !NewCollection().IsChronological() {
		t.Error("empty collection is chronological")
	}
}

func TestTimerange(t *testing.T) {
	if _, ok := NewCollection().Timerange(); ok {
		t.Fatal("expected no timerange on empty collection")
	}

	c := NewCollection().
		Insert(NewRangeEvent(NewTimeRange(at(3), at(8)), nil)).
		Insert(valueEvent(1, 1)).
		Insert(valueEvent(5, 2))

	tr, ok := c.Timerange()
	if !ok {
		t.Fatal("expected a timerange")
	}
	if !tr.Begin().Equal(at(1)) {
		t.Errorf("expected begin %v, got %v", at(1), tr.Begin())
	}
	if !tr.End().Equal(at(8)) {
		t.Errorf("expected end %v (interval end), got %v", at(8), tr.End())
	}
}

func TestTimerangeSingleInstant(t *testing.T) {
	c := NewCollection().Insert(valueEvent(4, 1))
	tr, ok := c.Timerange()
	if !ok {
		t.Fatal("expected a timerange")
	}
	if tr.Duration() != 0 || !tr.Begin().Equal(at(4)) {
		t.Errorf("expected degenerate range at %v, got %v..%v", at(4), tr.Begin(), tr.End())
	}
}
