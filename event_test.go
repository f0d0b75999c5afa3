package pond_test

import (
	"math"
	"strings"
	"testing"
	"time"

	. "github.com/2lambda123/esnet-pond"
)

func TestKeyCanonicalStrings(t *testing.T) {
	ts := time.UnixMilli(1756080000000).UTC()

	cases := []struct {
		name string
		key  Key
		want string
	}{
		{"time", NewTimeKey(ts), "t:1756080000000"},
		{"range", NewRangeKey(NewTimeRange(ts, ts.Add(time.Hour))), "r:1756080000000,1756083600000"},
		{"index", NewIndexKey(42), "i:42"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.key.String(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRangeKeyTimestampIsBegin(t *testing.T) {
	begin := at(1)
	end := at(5)
	k := NewRangeKey(NewTimeRange(begin, end))
	if !k.Timestamp().Equal(begin) {
		t.Errorf("expected interval start %v, got %v", begin, k.Timestamp())
	}
	if !k.End().Equal(end) {
		t.Errorf("expected end %v, got %v", end, k.End())
	}
}

func TestTimeRangeSwapsReversedArguments(t *testing.T) {
	tr := NewTimeRange(at(5), at(1))
	if !tr.Begin().Equal(at(1)) || !tr.End().Equal(at(5)) {
		t.Error("expected reversed bounds to be swapped")
	}
}

func TestEventGetNestedPath(t *testing.T) {
	e := NewEvent(at(0), map[string]any{
		"net": map[string]any{"eth0": map[string]any{"rx": 100.0}},
	})

	if got := e.Get("net.eth0.rx"); got != 100.0 {
		t.Errorf("expected 100, got %v", got)
	}
	if got := e.Get("net.eth1.rx"); got != nil {
		t.Errorf("expected nil for absent path, got %v", got)
	}
	if got := e.Get("net.eth0.rx.deeper"); got != nil {
		t.Errorf("expected nil when traversing past a leaf, got %v", got)
	}
}

func TestEventFloatCoercion(t *testing.T) {
	e := NewEvent(at(0), map[string]any{
		"f": 1.5, "i": 7, "s": "2.5", "text": "abc",
	})

	if v, ok := e.Float("f"); !ok || v != 1.5 {
		t.Errorf("float64 field: got %v %v", v, ok)
	}
	if v, ok := e.Float("i"); !ok || v != 7 {
		t.Errorf("int field: got %v %v", v, ok)
	}
	if v, ok := e.Float("s"); !ok || v != 2.5 {
		t.Errorf("numeric string field: got %v %v", v, ok)
	}
	if _, ok := e.Float("text"); ok {
		t.Error("non-numeric string should not coerce")
	}
	if _, ok := e.Float("absent"); ok {
		t.Error("absent field should not coerce")
	}
}

func TestEventIsValid(t *testing.T) {
	e := NewEvent(at(0), map[string]any{
		"ok":   1.0,
		"nan":  math.NaN(),
		"none": nil,
		"text": "hello",
	})

	if !e.IsValid("ok") {
		t.Error("numeric value should be valid")
	}
	if e.IsValid("nan") {
		t.Error("NaN should be invalid")
	}
	if e.IsValid("none") {
		t.Error("nil should be invalid")
	}
	if e.IsValid("absent") {
		t.Error("absent field should be invalid")
	}
	if !e.IsValid("text") {
		t.Error("non-numeric but present value should be valid")
	}
}

func TestEventDataIsACopy(t *testing.T) {
	e := NewEvent(at(0), map[string]any{"value": 1.0})
	d := e.Data()
	d["value"] = 99.0

	if v, _ := e.Float("value"); v != 1 {
		t.Errorf("mutating Data() copy leaked into the event: %g", v)
	}
}

func TestEventToJSONVariants(t *testing.T) {
	instant := NewEvent(at(0), map[string]any{"value": 1.0})
	if _, ok := instant.ToJSON()["time"]; !ok {
		t.Error("instant event dump must carry time")
	}

	ranged := NewRangeEvent(NewTimeRange(at(0), at(1)), nil)
	if _, ok := ranged.ToJSON()["timerange"]; !ok {
		t.Error("interval event dump must carry timerange")
	}

	indexed := NewIndexedEvent(3, nil)
	if _, ok := indexed.ToJSON()["index"]; !ok {
		t.Error("ordinal event dump must carry index")
	}

	if !strings.Contains(instant.String(), "\"data\"") {
		t.Error("string form should be the JSON dump")
	}
}
