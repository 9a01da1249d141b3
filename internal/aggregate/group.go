package aggregate

import (
	"sort"

	"github.com/perfviz/netcompare/internal/chart"
	"github.com/perfviz/netcompare/internal/core/model"
	"github.com/perfviz/netcompare/internal/selection"
)

// Grouping is a two-level grouping result, tagged by which map is set: flat
// groupings keyed by facet id, nested groupings keyed by facet id then
// breakdown id. Exactly one of the two maps is non-nil. A nil *Grouping
// means no joined data existed at all, which callers must distinguish from a
// grouping with empty groups.
type Grouping[T any] struct {
	ByFacet          map[string]T
	ByFacetBreakdown map[string]map[string]T
}

// Nested reports whether the grouping carries the secondary breakdown level.
func (g *Grouping[T]) Nested() bool {
	return g != nil && g.ByFacetBreakdown != nil
}

// Flatten collapses the grouping into one list of results, in sorted key
// order so output is deterministic.
func (g *Grouping[T]) Flatten() []T {
	if g == nil {
		return nil
	}

	if g.ByFacetBreakdown == nil {
		return flattenMap(g.ByFacet)
	}

	var results []T
	for _, facetKey := range sortedKeys(g.ByFacetBreakdown) {
		results = append(results, flattenMap(g.ByFacetBreakdown[facetKey])...)
	}
	return results
}

func flattenMap[T any](m map[string]T) []T {
	results := make([]T, 0, len(m))
	for _, key := range sortedKeys(m) {
		results = append(results, m[key])
	}
	return results
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// CombinedTimeSeries is the merged time-series result for one group: every
// member's fetch status, the present data arrays, the combined status, and
// the derived per-timestamp sample counts.
type CombinedTimeSeries struct {
	Statuses []model.Status            `json:"statuses"`
	Data     [][]model.TimeSeriesPoint `json:"data"`
	Status   model.Status              `json:"status"`
	Counts   []chart.CountPoint        `json:"counts"`
}

// HourlyEntry is one group member's hourly result. Unlike time series,
// hourly data stays a per-member list inside each group: hourly charts draw
// one line per member, while time-series charts draw one merged multi-line
// series per group.
type HourlyEntry struct {
	ID       string               `json:"id"`
	Data     []model.HourlyPoint  `json:"data"`
	Status   model.Status         `json:"status"`
	Wrangled []chart.HourlyBucket `json:"wrangled"`
}

// GroupTimeSeries groups joined items by facet id (and breakdown id for the
// three-dimension combined type) and merges each group's time series. Empty
// input yields nil: no data yet, not an empty grouping.
func GroupTimeSeries(items []CombinedItem, combinedType selection.CombinedType) *Grouping[*CombinedTimeSeries] {
	return buildGrouping(items, combinedType, combineTimeSeries)
}

// GroupHourly groups joined items the same way but keeps one entry per item
// inside each group, wrangled for the active metric.
func GroupHourly(items []CombinedItem, combinedType selection.CombinedType, metric model.Metric) *Grouping[[]HourlyEntry] {
	return buildGrouping(items, combinedType, func(group []CombinedItem) []HourlyEntry {
		return combineHourly(group, metric)
	})
}

// buildGrouping applies the shared two-level grouping and runs the combiner
// over every group. Items keep their input order inside each group.
func buildGrouping[T any](items []CombinedItem, combinedType selection.CombinedType, combine func([]CombinedItem) T) *Grouping[T] {
	if len(items) == 0 {
		return nil
	}

	if combinedType.Nested() {
		groups := make(map[string]map[string][]CombinedItem)
		for _, item := range items {
			facetKey := item.ID.FacetItemID
			if groups[facetKey] == nil {
				groups[facetKey] = make(map[string][]CombinedItem)
			}
			breakdownKey := item.ID.BreakdownByItemID
			groups[facetKey][breakdownKey] = append(groups[facetKey][breakdownKey], item)
		}

		result := &Grouping[T]{ByFacetBreakdown: make(map[string]map[string]T, len(groups))}
		for facetKey, subGroups := range groups {
			combined := make(map[string]T, len(subGroups))
			for breakdownKey, group := range subGroups {
				combined[breakdownKey] = combine(group)
			}
			result.ByFacetBreakdown[facetKey] = combined
		}
		return result
	}

	groups := make(map[string][]CombinedItem)
	for _, item := range items {
		groups[item.ID.FacetItemID] = append(groups[item.ID.FacetItemID], item)
	}

	result := &Grouping[T]{ByFacet: make(map[string]T, len(groups))}
	for facetKey, group := range groups {
		result.ByFacet[facetKey] = combine(group)
	}
	return result
}

// combineTimeSeries merges one group's time-series resources. Members whose
// data has not arrived contribute their status but no data array, so a group
// that is half loaded still reports every member's fetch state.
func combineTimeSeries(group []CombinedItem) *CombinedTimeSeries {
	combined := &CombinedTimeSeries{
		Statuses: make([]model.Status, 0, len(group)),
		Data:     make([][]model.TimeSeriesPoint, 0, len(group)),
	}

	for _, item := range group {
		resource := item.Data.Time.TimeSeries
		combined.Statuses = append(combined.Statuses, resource.Status)
		if resource.Data != nil {
			combined.Data = append(combined.Data, resource.Data)
		}
	}

	combined.Status = model.CombineStatus(combined.Statuses...)
	combined.Counts = chart.TimeSeriesCounts(combined.Data)

	return combined
}

// combineHourly produces one entry per group member, keyed by the member's
// filter item id.
func combineHourly(group []CombinedItem, metric model.Metric) []HourlyEntry {
	entries := make([]HourlyEntry, 0, len(group))
	for _, item := range group {
		resource := item.Data.Time.Hourly
		entries = append(entries, HourlyEntry{
			ID:       item.ID.FilterItemID,
			Data:     resource.Data,
			Status:   resource.Status,
			Wrangled: chart.WrangleHourly(resource.Data, metric),
		})
	}
	return entries
}
