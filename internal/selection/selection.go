// Package selection resolves the user's facet/filter choice into the
// canonical combined type and the full cross product of entity id
// combinations the aggregation pipeline joins on.
package selection

import (
	"time"

	"github.com/perfviz/netcompare/internal/core/model"
	"github.com/perfviz/netcompare/internal/util"
)

// TimeAggregation is the time bucket granularity for time series.
type TimeAggregation string

const (
	AggregationDay  TimeAggregation = "day"
	AggregationHour TimeAggregation = "hour"
)

// Breakdown selects which filter dimension, if any, supplies the secondary
// grouping key in the three-dimension case.
type Breakdown string

const (
	BreakdownNone    Breakdown = ""
	BreakdownFilter1 Breakdown = "filter1"
	BreakdownFilter2 Breakdown = "filter2"
)

// FilterDimension is one active filter: its dimension, the selected entity
// ids, and a tri-state breakdown flag. A nil BreakdownBy means the flag is
// unset, which the expander treats differently from an explicit false.
type FilterDimension struct {
	Type        model.Dimension
	IDs         []string
	BreakdownBy *bool
}

// Selection is the resolved user selection the pipeline is computed from.
type Selection struct {
	FacetType    model.Dimension
	FacetItemIDs []string
	Filter1      FilterDimension
	Filter2      FilterDimension
}

// ApplyBreakdown sets the per-dimension breakdown flags from the
// selection-level choice: the chosen filter gets an explicit true, the other
// an explicit false, and BreakdownNone leaves both unset.
func ApplyBreakdown(sel Selection, choice Breakdown) Selection {
	boolPtr := func(b bool) *bool { return &b }

	switch choice {
	case BreakdownFilter1:
		sel.Filter1.BreakdownBy = boolPtr(true)
		sel.Filter2.BreakdownBy = boolPtr(false)
	case BreakdownFilter2:
		sel.Filter1.BreakdownBy = boolPtr(false)
		sel.Filter2.BreakdownBy = boolPtr(true)
	default:
		sel.Filter1.BreakdownBy = nil
		sel.Filter2.BreakdownBy = nil
	}
	return sel
}

// FacetTypeOrDefault parses a facet-type value, falling back to location for
// unknown input with a warning. The warning only surfaces when the logger is
// initialized, so library consumers see the fallback silently.
func FacetTypeOrDefault(value string) model.Dimension {
	dim, ok := model.ParseDimension(value)
	if !ok {
		util.LogWarnf("Unknown facet type %q, falling back to %q", value, model.DimLocation.Name())
		return model.DimLocation
	}
	return dim
}

// FilterTypes returns the two non-facet dimensions, in canonical dimension
// order. Unknown facet dimensions yield an empty list; that degenerate case
// propagates as an empty selection rather than an error.
func FilterTypes(facet model.Dimension) []model.Dimension {
	switch facet {
	case model.DimLocation:
		return []model.Dimension{model.DimClientISP, model.DimTransitISP}
	case model.DimClientISP:
		return []model.Dimension{model.DimLocation, model.DimTransitISP}
	case model.DimTransitISP:
		return []model.Dimension{model.DimLocation, model.DimClientISP}
	default:
		return nil
	}
}

// InferTimeAggregation chooses the default bucket granularity for a date
// range: hourly buckets for ranges up to three days, daily above that.
func InferTimeAggregation(start, end time.Time) TimeAggregation {
	if end.Before(start) {
		start, end = end, start
	}
	if end.Sub(start) <= 72*time.Hour {
		return AggregationHour
	}
	return AggregationDay
}

// ColorIDs collects every selected entity id in facet, filter1, filter2
// order for stable color assignment. Empty ids are dropped; duplicates are
// kept so assignment order matches the selection exactly.
func ColorIDs(sel Selection) []string {
	ids := make([]string, 0, len(sel.FacetItemIDs)+len(sel.Filter1.IDs)+len(sel.Filter2.IDs))
	for _, group := range [][]string{sel.FacetItemIDs, sel.Filter1.IDs, sel.Filter2.IDs} {
		for _, id := range group {
			if id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
