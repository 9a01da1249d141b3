package commands

import (
	"sort"

	"github.com/perfviz/netcompare/internal/aggregate"
	"github.com/perfviz/netcompare/internal/chart"
	"github.com/perfviz/netcompare/internal/core/model"
	"github.com/perfviz/netcompare/internal/presentation/formatter"
	"github.com/perfviz/netcompare/internal/selection"
	"github.com/perfviz/netcompare/internal/selector"
)

// buildReport runs the full pipeline for one selection and summarizes the
// result for rendering.
func buildReport(selectors *selector.Selectors, sel selection.Selection, metric model.Metric,
	aggregation selection.TimeAggregation, palette []string) *formatter.Report {

	resolved := selectors.Combination(sel)
	items := selectors.CombinedItems(sel)
	timeSeriesGroups := selectors.TimeSeriesGroups(sel)

	var colors map[string]string
	if len(palette) > 0 {
		colors = chart.ColorsFromPalette(selection.ColorIDs(sel), palette)
	} else {
		colors = selectors.Colors(sel)
	}

	return &formatter.Report{
		CombinedType: string(resolved.CombinedType),
		Metric:       metric,
		Aggregation:  aggregation,
		Combinations: len(resolved.CombinedIDs),
		Joined:       len(items),
		Groups:       groupSummaries(timeSeriesGroups, selectors.Store().Entities(sel.FacetType)),
		Extents:      selectors.TimeSeriesExtents(sel, metric),
		HourlyExt:    selectors.HourlyExtents(sel, metric),
		TopFilters:   topFilterSummaries(selectors, sel),
		Colors:       colors,
	}
}

// groupSummaries flattens a grouping into sorted per-group rows, labeling
// each facet id from the entity store when its info has loaded.
func groupSummaries(grouping *aggregate.Grouping[*aggregate.CombinedTimeSeries],
	entities map[string]*model.Entity) []formatter.GroupSummary {

	if grouping == nil {
		return nil
	}

	var summaries []formatter.GroupSummary

	if grouping.Nested() {
		for facetID, subGroups := range grouping.ByFacetBreakdown {
			for breakdownID, combined := range subGroups {
				summaries = append(summaries, summarize(facetID, breakdownID, combined, entities))
			}
		}
	} else {
		for facetID, combined := range grouping.ByFacet {
			summaries = append(summaries, summarize(facetID, "", combined, entities))
		}
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].FacetID != summaries[j].FacetID {
			return summaries[i].FacetID < summaries[j].FacetID
		}
		return summaries[i].BreakdownID < summaries[j].BreakdownID
	})

	return summaries
}

func summarize(facetID, breakdownID string, combined *aggregate.CombinedTimeSeries,
	entities map[string]*model.Entity) formatter.GroupSummary {

	samples := 0
	for _, count := range combined.Counts {
		samples += count.Count
	}

	label := ""
	if entity := entities[facetID]; entity != nil {
		label = entity.Info.Data.Label
	}

	return formatter.GroupSummary{
		FacetID:     facetID,
		FacetLabel:  label,
		BreakdownID: breakdownID,
		Status:      combined.Status,
		Members:     len(combined.Statuses),
		Series:      len(combined.Data),
		Samples:     samples,
	}
}

// topFilterSummaries collects the suggested-filter rankings for both filter
// dimensions of the current facet, excluding ids the selection already uses.
func topFilterSummaries(selectors *selector.Selectors, sel selection.Selection) []formatter.TopFilterSummary {
	var summaries []formatter.TopFilterSummary

	for _, filterType := range selection.FilterTypes(sel.FacetType) {
		var selected []string
		for _, f := range []selection.FilterDimension{sel.Filter1, sel.Filter2} {
			if f.Type == filterType {
				selected = append(selected, f.IDs...)
			}
		}

		ranking := selectors.TopFilter(sel.FacetType, filterType, selected)
		if ranking.Status == model.StatusNotFetched && ranking.Data == nil {
			continue
		}

		summaries = append(summaries, formatter.TopFilterSummary{
			FilterType: filterType.Name(),
			Status:     ranking.Status,
			Candidates: ranking.Data,
		})
	}

	return summaries
}
