package pond

import (
	"errors"
	"math"
)

// CollapseConfig configures a Collapser.
type CollapseConfig struct {
	// Fields lists the field paths merged into the output field.
	Fields []string
	// Name is the output field.
	Name string
	// Reducer combines the gathered field values.
	Reducer Reducer
	// Append keeps the event's existing fields alongside the collapsed
	// one; otherwise the output carries only the collapsed field.
	Append bool
}

// Collapser merges several fields of each event into one, emitting exactly
// one output event per input, keyed identically.
type Collapser struct {
	cfg CollapseConfig
}

func NewCollapser(cfg CollapseConfig) (*Collapser, error) {
	if len(cfg.Fields) == 0 {
		return nil, errors.New("collapse: no fields given")
	}
	if cfg.Name == "" {
		return nil, errors.New("collapse: no output field name")
	}
	if cfg.Reducer == nil {
		return nil, errors.New("collapse: no reducer")
	}
	return &Collapser{cfg: cfg}, nil
}

func (p *Collapser) AddEvent(e Event) ([]Event, error) {
	values := make([]float64, len(p.cfg.Fields))
	for i, f := range p.cfg.Fields {
		v, ok := e.Float(f)
		if !ok {
			v = math.NaN()
		}
		values[i] = v
	}

	var data map[string]any
	if p.cfg.Append {
		data = e.Data()
	} else {
		data = map[string]any{}
	}
	setField(data, p.cfg.Name, p.cfg.Reducer(values))

	return []Event{e.WithData(data)}, nil
}

var _ Processor = (*Collapser)(nil)
