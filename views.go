package pond

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// GroupedView partitions a collection into labeled sub-collections. Group
// labels keep first-appearance order.
type GroupedView struct {
	order  []string
	groups map[string]Collection
}

// GroupByField partitions by the string form of the value at the field
// path. Events missing the field group under "".
func (c Collection) GroupByField(path string) GroupedView {
	g := GroupedView{groups: map[string]Collection{}}
	for _, e := range c.sequence {
		label := cast.ToString(e.Get(path))
		sub, ok := g.groups[label]
		if !ok {
			sub = NewCollection()
			g.order = append(g.order, label)
		}
		g.groups[label] = sub.Insert(e)
	}
	return g
}

// Groups returns the labels in first-appearance order.
func (g GroupedView) Groups() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Get returns the sub-collection for a label.
func (g GroupedView) Get(label string) (Collection, bool) {
	c, ok := g.groups[label]
	return c, ok
}

// Aggregate applies the reducer to the field within each group.
func (g GroupedView) Aggregate(r Reducer, path string, filters ...Filter) map[string]float64 {
	out := make(map[string]float64, len(g.groups))
	for label, sub := range g.groups {
		out[label] = sub.Aggregate(r, path, filters...)
	}
	return out
}

// WindowedView buckets a collection by fixed time windows. Labels take the
// form "<period>-<bucket>", e.g. "1h0m0s-42".
type WindowedView struct {
	period time.Duration
	view   GroupedView
}

// Window partitions by the bucket floor(begin/period) of each event.
func (c Collection) Window(period time.Duration) WindowedView {
	w := WindowedView{period: period, view: GroupedView{groups: map[string]Collection{}}}
	if period <= 0 {
		return w
	}
	for _, e := range c.sequence {
		bucket := e.Begin().UnixMilli() / period.Milliseconds()
		label := fmt.Sprintf("%s-%d", period, bucket)
		sub, ok := w.view.groups[label]
		if !ok {
			sub = NewCollection()
			w.view.order = append(w.view.order, label)
		}
		w.view.groups[label] = sub.Insert(e)
	}
	return w
}

// Windows returns the window labels in first-appearance order.
func (w WindowedView) Windows() []string {
	return w.view.Groups()
}

// Get returns the sub-collection for a window label.
func (w WindowedView) Get(label string) (Collection, bool) {
	return w.view.Get(label)
}

// Aggregate applies the reducer to the field within each window.
func (w WindowedView) Aggregate(r Reducer, path string, filters ...Filter) map[string]float64 {
	return w.view.Aggregate(r, path, filters...)
}
