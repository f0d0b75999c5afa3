package pond

import (
	"encoding/json"
	"sort"
)

// ReorderFunc may rewrite the whole sequence after an append (for example
// to keep it time-sorted). Returning the input slice unchanged signals that
// no reorder happened and lets Insert update the key index incrementally;
// returning any other slice forces a full index rebuild.
type ReorderFunc func([]Event) []Event

// Resolver merges duplicate events inserted under one key. It receives the
// prior conflicting events followed by the incoming event, in that order,
// and must return exactly one replacement.
type Resolver func(conflicts []Event) Event

// Collection is an immutable, ordered, key-indexed container of Events.
// Every mutating operation returns a new Collection; the receiver is never
// observably changed, so Collections are safe to share for read-only use
// without locking.
//
// The index maps each key's canonical string to the positions in sequence
// holding that key, and is kept exactly consistent with sequence across
// every operation.
type Collection struct {
	sequence []Event
	index    map[string][]int
	reorder  ReorderFunc
}

// NewCollection creates an empty collection with insertion ordering.
func NewCollection() Collection {
	return Collection{index: map[string][]int{}}
}

// NewChronological creates an empty collection whose reorder hook keeps the
// sequence sorted by key timestamp after every insert.
func NewChronological() Collection {
	return NewCollection().WithReorder(chronologicalReorder)
}

// FromEvents creates a collection from an ordered slice of events. The
// slice is copied and the index built eagerly in one pass.
func FromEvents(events []Event) Collection {
	seq := make([]Event, len(events))
	copy(seq, events)
	return Collection{sequence: seq, index: buildIndex(seq)}
}

// WithReorder returns a copy of the collection using the given reorder
// hook for subsequent inserts. A nil hook means identity (append order).
func (c Collection) WithReorder(fn ReorderFunc) Collection {
	return Collection{sequence: c.sequence, index: c.index, reorder: fn}
}

// buildIndex rebuilds the key→positions map from scratch in one pass.
func buildIndex(seq []Event) map[string][]int {
	index := make(map[string][]int, len(seq))
	for i, e := range seq {
		k := e.Key().String()
		index[k] = append(index[k], i)
	}
	return index
}

func (c Collection) Size() int {
	return len(c.sequence)
}

// At returns the event at position i, with ok=false when out of range.
func (c Collection) At(i int) (Event, bool) {
	if i < 0 || i >= len(c.sequence) {
		return Event{}, false
	}
	return c.sequence[i], true
}

// AtKey returns all events whose key serializes identically to k, in
// sequence order. An unindexed key yields an empty result, not an error.
func (c Collection) AtKey(k Key) []Event {
	positions := c.index[k.String()]
	out := make([]Event, 0, len(positions))
	for _, p := range positions {
		out = append(out, c.sequence[p])
	}
	return out
}

// Events returns a copy of the sequence in order.
func (c Collection) Events() []Event {
	out := make([]Event, len(c.sequence))
	copy(out, c.sequence)
	return out
}

// FirstEvent returns the first event, with ok=false on an empty collection.
func (c Collection) FirstEvent() (Event, bool) {
	if len(c.sequence) == 0 {
		return Event{}, false
	}
	return c.sequence[0], true
}

// LastEvent returns the last event, with ok=false on an empty collection.
func (c Collection) LastEvent() (Event, bool) {
	if len(c.sequence) == 0 {
		return Event{}, false
	}
	return c.sequence[len(c.sequence)-1], true
}

// Insert appends an event, permitting duplicate keys.
func (c Collection) Insert(e Event) Collection {
	return c.insert(e, false, nil)
}

// InsertDedup appends an event, first resolving any events already indexed
// under the same key string. With a nil resolver the conflicts are simply
// discarded (replace mode); otherwise the resolver is called with the
// conflicts plus the new event and its result is inserted instead. Either
// way exactly one event remains for the key.
func (c Collection) InsertDedup(e Event, resolve Resolver) Collection {
	return c.insert(e, true, resolve)
}

func (c Collection) insert(e Event, dedup bool, resolve Resolver) Collection {
	seq := c.sequence
	removed := false

	if dedup {
		k := e.Key().String()
		if positions := c.index[k]; len(positions) > 0 {
			if resolve != nil {
				conflicts := make([]Event, 0, len(positions)+1)
				for _, p := range positions {
					conflicts = append(conflicts, c.sequence[p])
				}
				conflicts = append(conflicts, e)
				e = resolve(conflicts)
			}
			seq = dropPositions(c.sequence, positions)
			removed = true
		}
	}

	// Append on a fresh backing array so the receiver's sequence is never
	// aliased by the result.
	appended := make([]Event, len(seq), len(seq)+1)
	copy(appended, seq)
	appended = append(appended, e)

	out := appended
	if c.reorder != nil {
		out = c.reorder(appended)
	}

	var index map[string][]int
	if removed || !sameSlice(out, appended) {
		index = buildIndex(out)
	} else {
		// Untouched sequence: extend just the inserted key's position set.
		k := e.Key().String()
		index = cloneIndex(c.index)
		index[k] = append(append([]int(nil), c.index[k]...), len(out)-1)
	}

	return Collection{sequence: out, index: index, reorder: c.reorder}
}

// RemoveByKey drops every event indexed under the key's string form and
// removes the key from the index. Removing an absent key is a no-op.
func (c Collection) RemoveByKey(k Key) Collection {
	positions := c.index[k.String()]
	if len(positions) == 0 {
		return c
	}
	return c.replaceAll(dropPositions(c.sequence, positions))
}

// replaceAll wraps a derived sequence in a new collection, rebuilding the
// index from scratch. Every structural transform funnels through here.
func (c Collection) replaceAll(seq []Event) Collection {
	return Collection{sequence: seq, index: buildIndex(seq), reorder: c.reorder}
}

// ToJSON returns the plain structural dump: an ordered array of event
// forms reflecting current sequence order.
func (c Collection) ToJSON() []map[string]any {
	out := make([]map[string]any, len(c.sequence))
	for i, e := range c.sequence {
		out[i] = e.ToJSON()
	}
	return out
}

func (c Collection) String() string {
	b, _ := json.Marshal(c.ToJSON())
	return string(b)
}

//
// Helpers
//

// dropPositions returns a new slice omitting the given positions.
func dropPositions(seq []Event, positions []int) []Event {
	drop := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		drop[p] = struct{}{}
	}
	out := make([]Event, 0, len(seq)-len(positions))
	for i, e := range seq {
		if _, gone := drop[i]; gone {
			continue
		}
		out = append(out, e)
	}
	return out
}

// sameSlice reports whether two slices are the identical slice (same
// backing array, same length), which is how a reorder hook signals "no
// change".
func sameSlice(a, b []Event) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

func cloneIndex(index map[string][]int) map[string][]int {
	out := make(map[string][]int, len(index))
	for k, v := range index {
		out[k] = append([]int(nil), v...)
	}
	return out
}

// chronologicalReorder returns the input unchanged when already sorted by
// key timestamp, otherwise a sorted copy. The identity return preserves
// Insert's incremental index path for in-order appends.
func chronologicalReorder(seq []Event) []Event {
	sorted := true
	for i := 1; i < len(seq); i++ {
		if seq[i].Timestamp().Before(seq[i-1].Timestamp()) {
			sorted = false
			break
		}
	}
	if sorted {
		return seq
	}
	out := make([]Event, len(seq))
	copy(out, seq)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp().Before(out[j].Timestamp())
	})
	return out
}
