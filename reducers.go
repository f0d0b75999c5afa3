package pond

import (
	"math"
	"sort"
)

// Reducer combines a slice of numeric values, gathered in sequence order,
// into one scalar. Reducers receive values as-is; use a Filter to decide
// how missing values (NaN) are treated beforehand. Most reducers return
// NaN for empty input.
type Reducer func(values []float64) float64

// Filter preprocesses gathered values before reduction, typically to
// handle missing values (represented as NaN).
type Filter func(values []float64) []float64

//
// Filters
//

// IgnoreMissing drops NaN values.
func IgnoreMissing(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// ZeroMissing replaces NaN values with zero.
func ZeroMissing(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = 0
		} else {
			out[i] = v
		}
	}
	return out
}

// PropagateMissing yields no values at all if any value is missing, so the
// reduction comes out NaN.
func PropagateMissing(values []float64) []float64 {
	for _, v := range values {
		if math.IsNaN(v) {
			return nil
		}
	}
	return values
}

// NoneIfEmpty is the identity on non-empty input and nil otherwise.
func NoneIfEmpty(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	return values
}

//
// Reducers
//

func Sum(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	s := 0.0
	for _, v := range values {
		s += v
	}
	return s
}

// Count reduces to the number of values; zero for empty input, not NaN.
func Count(values []float64) float64 {
	return float64(len(values))
}

func Avg(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return Sum(values) / float64(len(values))
}

func Min(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func Max(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func First(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return values[0]
}

func Last(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return values[len(values)-1]
}

// Stdev is the population standard deviation.
func Stdev(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	mean := Avg(values)
	sumsq := 0.0
	for _, v := range values {
		d := v - mean
		sumsq += d * d
	}
	return math.Sqrt(sumsq / float64(len(values)))
}

// Median is the 50th percentile under linear interpolation.
func Median(values []float64) float64 {
	return PercentileReducer(50, InterpLinear)(values)
}

// PercentileReducer builds a reducer computing the q-th percentile
// (0 ≤ q ≤ 100) of its input under the given interpolation mode.
func PercentileReducer(q float64, interp Interpolation) Reducer {
	return func(values []float64) float64 {
		if len(values) == 0 || q < 0 || q > 100 {
			return math.NaN()
		}
		sorted := make([]float64, len(values))
		copy(sorted, values)
		sort.Float64s(sorted)
		return percentileOfSorted(sorted, q/100, interp)
	}
}

// percentileOfSorted reads the quantile point p (0 ≤ p ≤ 1) out of an
// ascending-sorted slice, combining the two straddling values per the
// interpolation mode.
func percentileOfSorted(sorted []float64, p float64, interp Interpolation) float64 {
	pos := float64(len(sorted)-1) * p
	idx := int(math.Floor(pos))
	fraction := pos - float64(idx)
	v := sorted[idx]
	if idx < len(sorted)-1 {
		v = interpolate(sorted[idx], sorted[idx+1], fraction, interp)
	}
	return v
}

// interpolate combines two adjacent sorted values. Dispatch is explicit on
// the caller-supplied mode; unrecognized modes fall back to linear.
func interpolate(v0, v1, fraction float64, interp Interpolation) float64 {
	switch interp {
	case InterpLower:
		return v0
	case InterpHigher:
		return v1
	case InterpNearest:
		if fraction < 0.5 {
			return v0
		}
		return v1
	case InterpMidpoint:
		return (v0 + v1) / 2
	default:
		return v0 + (v1-v0)*fraction
	}
}
