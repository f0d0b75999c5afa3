package pond

import (
	"errors"
	"fmt"
	"math"
)

// Interpolation selects how two adjacent sorted values are combined when a
// requested quantile falls between them.
type Interpolation int

const (
	InterpLinear Interpolation = iota
	InterpLower
	InterpHigher
	InterpNearest
	InterpMidpoint
)

// ErrQuantileOutOfRange is reported when Quantile is asked for more
// divisions than the collection has events.
var ErrQuantileOutOfRange = errors.New("quantile count out of range")

// FieldValues gathers the numeric values at the field path across all
// events in sequence order. Missing or non-numeric fields gather as NaN.
// Filters, if any, are applied in order to the gathered slice.
func (c Collection) FieldValues(path string, filters ...Filter) []float64 {
	values := make([]float64, len(c.sequence))
	for i, e := range c.sequence {
		v, ok := e.Float(path)
		if !ok {
			v = math.NaN()
		}
		values[i] = v
	}
	for _, f := range filters {
		values = f(values)
	}
	return values
}

// Aggregate applies the reducer to the values at the field path and
// returns the scalar result.
func (c Collection) Aggregate(r Reducer, path string, filters ...Filter) float64 {
	return r(c.FieldValues(path, filters...))
}

// AggregateFields applies the reducer independently to each field path and
// returns a path→scalar mapping.
func (c Collection) AggregateFields(r Reducer, paths []string, filters ...Filter) map[string]float64 {
	out := make(map[string]float64, len(paths))
	for _, p := range paths {
		out[p] = c.Aggregate(r, p, filters...)
	}
	return out
}

//
// Named aggregations
//

func (c Collection) Sum(path string, filters ...Filter) float64 {
	return c.Aggregate(Sum, path, filters...)
}

func (c Collection) Avg(path string, filters ...Filter) float64 {
	return c.Aggregate(Avg, path, filters...)
}

func (c Collection) Min(path string, filters ...Filter) float64 {
	return c.Aggregate(Min, path, filters...)
}

func (c Collection) Max(path string, filters ...Filter) float64 {
	return c.Aggregate(Max, path, filters...)
}

func (c Collection) First(path string, filters ...Filter) float64 {
	return c.Aggregate(First, path, filters...)
}

func (c Collection) Last(path string, filters ...Filter) float64 {
	return c.Aggregate(Last, path, filters...)
}

func (c Collection) Median(path string, filters ...Filter) float64 {
	return c.Aggregate(Median, path, filters...)
}

func (c Collection) Stdev(path string, filters ...Filter) float64 {
	return c.Aggregate(Stdev, path, filters...)
}

func (c Collection) Count(path string, filters ...Filter) float64 {
	return c.Aggregate(Count, path, filters...)
}

// Percentile computes the q-th percentile (0 ≤ q ≤ 100) of the values at
// the field path under the given interpolation mode.
func (c Collection) Percentile(q float64, path string, interp Interpolation, filters ...Filter) float64 {
	return c.Aggregate(PercentileReducer(q, interp), path, filters...)
}

// Quantile computes n-quantile cut points over the values at the field
// path: the n-1 boundary values at i/n for i in 1..n-1, each interpolated
// between the straddling sorted values per the interpolation mode. The
// request must satisfy 1 ≤ n ≤ Size; anything else reports
// ErrQuantileOutOfRange rather than truncating.
func (c Collection) Quantile(n int, path string, interp Interpolation) ([]float64, error) {
	size := len(c.sequence)
	if n < 1 || n > size {
		return nil, fmt.Errorf("quantile divisions %d with %d events: %w", n, size, ErrQuantileOutOfRange)
	}

	sorted := c.SortBy(path).FieldValues(path)
	out := make([]float64, 0, n-1)
	for i := 1; i < n; i++ {
		out = append(out, percentileOfSorted(sorted, float64(i)/float64(n), interp))
	}
	return out, nil
}
