// Package codec loads and dumps event sequences for the pond core. The
// core itself stays I/O-free; file formats live here.
package codec

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	pond "github.com/2lambda123/esnet-pond"
)

// document is the on-disk shape: a list of keyed entries.
//
//	events:
//	  - time: 2026-08-25T00:00:00Z      # RFC3339 or unix ms
//	    data: {value: 42}
//	  - timerange: [1756080000000, 1756083600000]
//	    data: {in: 1, out: 2}
//	  - index: 3
//	    data: {value: 7}
type document struct {
	Events []entry `yaml:"events"`
}

type entry struct {
	Time      any            `yaml:"time,omitempty"`
	Timerange []any          `yaml:"timerange,omitempty"`
	Index     *int64         `yaml:"index,omitempty"`
	Data      map[string]any `yaml:"data"`
}

// ReadEvents decodes a YAML event document into an ordered event slice.
func ReadEvents(r io.Reader) ([]pond.Event, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("codec: decode: %w", err)
	}

	out := make([]pond.Event, 0, len(doc.Events))
	for i, ent := range doc.Events {
		e, err := ent.toEvent()
		if err != nil {
			return nil, fmt.Errorf("codec: event %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// LoadFile reads a YAML event file into a collection, preserving file
// order.
func LoadFile(path string) (pond.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return pond.Collection{}, fmt.Errorf("codec: %w", err)
	}
	defer f.Close()

	events, err := ReadEvents(f)
	if err != nil {
		return pond.Collection{}, err
	}
	return pond.FromEvents(events), nil
}

// WriteJSON dumps the collection's structural form as JSON text.
func WriteJSON(w io.Writer, c pond.Collection) error {
	_, err := io.WriteString(w, c.String())
	return err
}

func (ent entry) toEvent() (pond.Event, error) {
	data := ent.Data
	if data == nil {
		data = map[string]any{}
	}

	switch {
	case ent.Index != nil:
		return pond.NewIndexedEvent(*ent.Index, data), nil
	case len(ent.Timerange) == 2:
		begin, err := parseTime(ent.Timerange[0])
		if err != nil {
			return pond.Event{}, err
		}
		end, err := parseTime(ent.Timerange[1])
		if err != nil {
			return pond.Event{}, err
		}
		return pond.NewRangeEvent(pond.NewTimeRange(begin, end), data), nil
	case ent.Time != nil:
		t, err := parseTime(ent.Time)
		if err != nil {
			return pond.Event{}, err
		}
		return pond.NewEvent(t, data), nil
	default:
		return pond.Event{}, fmt.Errorf("entry has no time, timerange, or index key")
	}
}

// parseTime accepts RFC3339 strings or unix-millisecond numbers.
func parseTime(v any) (time.Time, error) {
	if s, ok := v.(string); ok {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, nil
		}
	}
	ms, err := cast.ToInt64E(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad time value %v", v)
	}
	return time.UnixMilli(ms).UTC(), nil
}
