package pond

import (
	"errors"
	"strings"
	"time"
)

// AlignMethod selects how values are projected onto a grid boundary.
type AlignMethod int

const (
	// AlignHold carries the previous event's value forward.
	AlignHold AlignMethod = iota
	// AlignLinear interpolates between the surrounding events.
	AlignLinear
)

// AlignConfig configures an Aligner.
type AlignConfig struct {
	// Fields lists the field paths to align.
	Fields []string
	// Period is the grid spacing.
	Period time.Duration
	// Method selects hold or linear projection.
	Method AlignMethod
	// Limit caps how many grid boundaries may be filled within one gap
	// between observed events; 0 means unlimited. Boundaries beyond the
	// limit emit nothing.
	Limit int
}

// Aligner snaps irregular observations onto regular period boundaries.
// For each consecutive pair of events it emits one instant-keyed event per
// grid boundary in (prev, curr]. The first event only primes the state.
type Aligner struct {
	cfg  AlignConfig
	prev *Event
}

func NewAligner(cfg AlignConfig) (*Aligner, error) {
	if cfg.Period <= 0 {
		return nil, errors.New("align: period must be positive")
	}
	if len(cfg.Fields) == 0 {
		return nil, errors.New("align: no fields given")
	}
	return &Aligner{cfg: cfg}, nil
}

func (a *Aligner) AddEvent(e Event) ([]Event, error) {
	prev := a.prev
	a.prev = &e
	if prev == nil {
		return nil, nil
	}

	t0 := prev.Timestamp()
	t1 := e.Timestamp()
	if !t1.After(t0) {
		return nil, nil
	}

	var out []Event
	count := 0
	for b := nextBoundary(t0, a.cfg.Period); !b.After(t1); b = b.Add(a.cfg.Period) {
		if a.cfg.Limit > 0 && count >= a.cfg.Limit {
			break
		}
		data := map[string]any{}
		for _, f := range a.cfg.Fields {
			v0, ok0 := prev.Float(f)
			v1, ok1 := e.Float(f)
			if !ok0 || !ok1 {
				continue
			}
			switch a.cfg.Method {
			case AlignLinear:
				frac := float64(b.Sub(t0)) / float64(t1.Sub(t0))
				setField(data, f, v0+(v1-v0)*frac)
			default:
				setField(data, f, v0)
			}
		}
		out = append(out, NewEvent(b, data))
		count++
	}
	return out, nil
}

var _ Processor = (*Aligner)(nil)

// nextBoundary returns the first grid boundary strictly after t. Alignment
// is against the UTC epoch, the same zero Truncate uses.
func nextBoundary(t time.Time, period time.Duration) time.Time {
	b := t.Truncate(period)
	if !b.After(t) {
		b = b.Add(period)
	}
	return b
}

// setField writes a value at a dotted path, creating nested maps as
// needed. Intermediate non-map values are overwritten.
func setField(data map[string]any, path string, v any) {
	parts := strings.Split(path, ".")
	m := data
	for _, p := range parts[:len(parts)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[p] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = v
}
