package pond

import (
	"errors"
	"math"
)

// RateConfig configures a Rater.
type RateConfig struct {
	// Fields lists the field paths to derive rates for.
	Fields []string
	// AllowNegative keeps negative rates; when false they become NaN
	// (useful for monotonic counters that occasionally reset).
	AllowNegative bool
}

// Rater emits, for each consecutive pair of events, one interval-keyed
// event spanning the pair and carrying "<field>_rate" = Δvalue/Δseconds.
// A derivative needs a preceding point, so the first event emits nothing.
type Rater struct {
	cfg  RateConfig
	prev *Event
}

func NewRater(cfg RateConfig) (*Rater, error) {
	if len(cfg.Fields) == 0 {
		return nil, errors.New("rate: no fields given")
	}
	return &Rater{cfg: cfg}, nil
}

func (r *Rater) AddEvent(e Event) ([]Event, error) {
	prev := r.prev
	r.prev = &e
	if prev == nil {
		return nil, nil
	}

	t0 := prev.Timestamp()
	t1 := e.Timestamp()
	dt := t1.Sub(t0)
	if dt <= 0 {
		// Zero or backwards time step: no meaningful derivative.
		return nil, nil
	}

	data := make(map[string]any, len(r.cfg.Fields))
	for _, f := range r.cfg.Fields {
		rate := math.NaN()
		v0, ok0 := prev.Float(f)
		v1, ok1 := e.Float(f)
		if ok0 && ok1 {
			rate = (v1 - v0) / dt.Seconds()
			if rate < 0 && !r.cfg.AllowNegative {
				rate = math.NaN()
			}
		}
		data[f+"_rate"] = rate
	}

	return []Event{NewRangeEvent(NewTimeRange(t0, t1), data)}, nil
}

var _ Processor = (*Rater)(nil)
