// Package chart holds the pure chart-support utilities the aggregation
// pipeline delegates to: shared extents for axis scaling, hour-of-day
// wrangling, per-timestamp counts, and stable color assignment.
package chart

import (
	"github.com/perfviz/netcompare/internal/core/model"
)

// Extent is a [min, max] numeric range for chart axis scaling.
type Extent [2]float64

// Min returns the lower bound.
func (e Extent) Min() float64 { return e[0] }

// Max returns the upper bound.
func (e Extent) Max() float64 { return e[1] }

// MultiExtent computes the shared [min, max] over every point of every
// series. results extracts the point slice from a series, value the numeric
// value from a point (false to skip the point). The boolean result is false
// when no point contributed a value.
func MultiExtent[S, P any](series []S, results func(S) []P, value func(P) (float64, bool)) (Extent, bool) {
	var extent Extent
	found := false

	for _, s := range series {
		for _, p := range results(s) {
			v, ok := value(p)
			if !ok {
				continue
			}
			if !found {
				extent = Extent{v, v}
				found = true
				continue
			}
			if v < extent[0] {
				extent[0] = v
			}
			if v > extent[1] {
				extent[1] = v
			}
		}
	}

	return extent, found
}

// HourlyExtents computes the shared value and count extents over a set of
// hourly series, keyed by dataKey and "count". Buckets with a zero sample
// count are dense-fill placeholders, not measurements, so their metric
// fields are left out of the value extent. Keys with no contributing points
// are omitted; empty input yields an empty map.
func HourlyExtents(series [][]model.HourlyPoint, dataKey string) map[string]Extent {
	extents := make(map[string]Extent)

	if valueExtent, ok := MultiExtent(series,
		func(s []model.HourlyPoint) []model.HourlyPoint { return s },
		func(p model.HourlyPoint) (float64, bool) {
			if p.Count == 0 {
				return 0, false
			}
			return p.Value(dataKey)
		}); ok {
		extents[dataKey] = valueExtent
	}

	if countExtent, ok := MultiExtent(series,
		func(s []model.HourlyPoint) []model.HourlyPoint { return s },
		func(p model.HourlyPoint) (float64, bool) { return float64(p.Count), true }); ok {
		extents["count"] = countExtent
	}

	return extents
}
