package aggregate

import (
	"github.com/perfviz/netcompare/internal/chart"
	"github.com/perfviz/netcompare/internal/core/model"
)

// TimeSeriesExtents computes the shared axis extents over every series in a
// time-series grouping, flat or nested: one extent for the active metric's
// values and one for the derived sample counts. Points with a zero sample
// count carry no measurement, so their metric fields are left out of the
// value extent (they still feed the count extent). Keys with no contributing
// data are omitted; a nil grouping yields an empty map.
func TimeSeriesExtents(g *Grouping[*CombinedTimeSeries], metric model.Metric) map[string]chart.Extent {
	extents := make(map[string]chart.Extent)

	flat := g.Flatten()
	if len(flat) == 0 {
		return extents
	}

	var series [][]model.TimeSeriesPoint
	for _, combined := range flat {
		series = append(series, combined.Data...)
	}

	if valueExtent, ok := chart.MultiExtent(series,
		func(s []model.TimeSeriesPoint) []model.TimeSeriesPoint { return s },
		func(p model.TimeSeriesPoint) (float64, bool) {
			if p.Count == 0 {
				return 0, false
			}
			return p.Value(metric.DataKey)
		}); ok {
		extents[metric.DataKey] = valueExtent
	}

	if countExtent, ok := chart.MultiExtent(flat,
		func(c *CombinedTimeSeries) []chart.CountPoint { return c.Counts },
		func(p chart.CountPoint) (float64, bool) { return float64(p.Count), true }); ok {
		extents["count"] = countExtent
	}

	return extents
}

// HourlyExtents flattens an hourly grouping into one merged entry list and
// delegates to the shared hourly-extent utility for the active metric.
func HourlyExtents(g *Grouping[[]HourlyEntry], metric model.Metric) map[string]chart.Extent {
	var series [][]model.HourlyPoint
	for _, entries := range g.Flatten() {
		for _, entry := range entries {
			if entry.Data != nil {
				series = append(series, entry.Data)
			}
		}
	}

	return chart.HourlyExtents(series, metric.DataKey)
}
