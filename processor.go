package pond

// Processor is a stateful, single-pass stream transformer. AddEvent is
// called exactly once per input event in sequence order and may emit zero
// or more output events; correctness of implementations generally depends
// on that ordering (e.g. a carried previous event), so a pipe must never
// reorder or parallelize calls.
type Processor interface {
	AddEvent(e Event) ([]Event, error)
}

// Pipe feeds every event through the processor in strict sequence order
// and reassembles the flattened outputs into a new collection.
func (c Collection) Pipe(p Processor) (Collection, error) {
	out := make([]Event, 0, len(c.sequence))
	for _, e := range c.sequence {
		emitted, err := p.AddEvent(e)
		if err != nil {
			return Collection{}, err
		}
		out = append(out, emitted...)
	}
	return c.replaceAll(out), nil
}

// Align interpolates the collection's values onto a regular time grid.
// May emit zero, one, or many events per input.
func (c Collection) Align(cfg AlignConfig) (Collection, error) {
	a, err := NewAligner(cfg)
	if err != nil {
		return Collection{}, err
	}
	return c.Pipe(a)
}

// Rate derives per-second rates between consecutive events. The first
// event emits nothing.
func (c Collection) Rate(cfg RateConfig) (Collection, error) {
	r, err := NewRater(cfg)
	if err != nil {
		return Collection{}, err
	}
	return c.Pipe(r)
}

// Collapse merges a list of fields into a single field on each event,
// emitting exactly one output per input.
func (c Collection) Collapse(cfg CollapseConfig) (Collection, error) {
	p, err := NewCollapser(cfg)
	if err != nil {
		return Collection{}, err
	}
	return c.Pipe(p)
}
