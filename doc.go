// Package pond is an immutable, ordered, key-indexed container of
// time-keyed events, with structural transforms and a statistical
// aggregation engine.
//
// A Collection keeps its sequence and a derived key→positions index
// exactly consistent across every operation. Mutating operations return
// new Collections; existing instances never change, so they can be shared
// across goroutines for reading without locking.
//
//	col := pond.NewCollection().
//		Insert(pond.NewEvent(t0, map[string]any{"value": 3.0})).
//		Insert(pond.NewEvent(t1, map[string]any{"value": 5.0}))
//	avg := col.Avg("value")
//
// The core is pure and I/O-free; file formats live in the codec package
// and the command-line front-end under cmd/pondcli.
package pond
