package selection

import (
	"sort"
	"strings"

	"github.com/perfviz/netcompare/internal/core/model"
	"github.com/perfviz/netcompare/internal/identity"
)

// CombinedType names the set of dimensions active in a selection, sorted by
// canonical priority and dash-joined.
type CombinedType string

const (
	CombinedNone                  CombinedType = ""
	CombinedClientTransit         CombinedType = "clientIsp-transitIsp"
	CombinedLocationClient        CombinedType = "location-clientIsp"
	CombinedLocationTransit       CombinedType = "location-transitIsp"
	CombinedLocationClientTransit CombinedType = "location-clientIsp-transitIsp"
)

// DimensionCount returns how many dimensions the combined type spans.
func (t CombinedType) DimensionCount() int {
	if t == CombinedNone {
		return 0
	}
	return strings.Count(string(t), "-") + 1
}

// Nested reports whether groupings for this combined type carry a secondary
// breakdown level.
func (t CombinedType) Nested() bool {
	return t == CombinedLocationClientTransit
}

// combinedTypeFor derives the combined type from the active dimensions,
// which must already be in canonical order. Anything outside the four
// recognized pairings (a single dimension, duplicates) maps to CombinedNone.
func combinedTypeFor(dims []model.Dimension) CombinedType {
	names := make([]string, len(dims))
	for i, d := range dims {
		names[i] = d.Name()
	}

	switch CombinedType(strings.Join(names, "-")) {
	case CombinedClientTransit:
		return CombinedClientTransit
	case CombinedLocationClient:
		return CombinedLocationClient
	case CombinedLocationTransit:
		return CombinedLocationTransit
	case CombinedLocationClientTransit:
		return CombinedLocationClientTransit
	default:
		return CombinedNone
	}
}

// CombinedID is one entry of the expanded cross product: the composite key
// plus the id each role contributed.
type CombinedID struct {
	// Combined is the composite lookup key built from the dimension ids in
	// canonical order.
	Combined string `json:"combined"`

	// Per-dimension ids; empty for inactive dimensions.
	LocationID   string `json:"locationId,omitempty"`
	ClientISPID  string `json:"clientIspId,omitempty"`
	TransitISPID string `json:"transitIspId,omitempty"`

	// Role ids. FacetItemID is always set. FilterItemID is set for the
	// two-dimension case and, in the three-dimension case, only when some
	// filter carries an explicit false breakdown flag. BreakdownByItemID is
	// set only in the three-dimension case with a breakdown chosen.
	FacetItemID       string `json:"facetItemId"`
	FilterItemID      string `json:"filterItemId,omitempty"`
	BreakdownByItemID string `json:"breakdownByItemId,omitempty"`
}

// ResolvedCombination is the expander output: the canonical combined type
// and the full, order-stable cross product of id combinations.
type ResolvedCombination struct {
	CombinedType CombinedType
	CombinedIDs  []CombinedID
}

// activeDim is one dimension participating in the cross product.
type activeDim struct {
	dim         model.Dimension
	ids         []string
	isFacet     bool
	breakdownBy *bool
}

// Expand enumerates every combination of entity ids across the active
// dimensions. The facet dimension is always active, even with no ids; a
// filter dimension is active only when it has ids. Iteration is outermost
// over the lowest-priority active dimension, so output order is stable.
func Expand(sel Selection) ResolvedCombination {
	active := []activeDim{{dim: sel.FacetType, ids: sel.FacetItemIDs, isFacet: true}}
	for _, f := range []FilterDimension{sel.Filter1, sel.Filter2} {
		if len(f.IDs) > 0 {
			active = append(active, activeDim{dim: f.Type, ids: f.IDs, breakdownBy: f.BreakdownBy})
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].dim < active[j].dim
	})

	dims := make([]model.Dimension, len(active))
	for i, a := range active {
		dims[i] = a.dim
	}

	combinedType := combinedTypeFor(dims)
	if combinedType == CombinedNone {
		return ResolvedCombination{CombinedType: CombinedNone}
	}

	// In the three-dimension case the breakdown source is the first
	// non-facet dimension whose flag is an explicit true, and the filter
	// source the first with an explicit false. Unset flags are transparent
	// and fall through to the next dimension in canonical order.
	breakdownIdx, filterIdx := -1, -1
	for i, a := range active {
		if a.isFacet {
			continue
		}
		if combinedType.Nested() {
			if breakdownIdx < 0 && a.breakdownBy != nil && *a.breakdownBy {
				breakdownIdx = i
			}
			if filterIdx < 0 && a.breakdownBy != nil && !*a.breakdownBy {
				filterIdx = i
			}
		} else if filterIdx < 0 {
			// Two dimensions: the lone non-facet dimension is the filter.
			filterIdx = i
		}
	}

	size := 1
	for _, a := range active {
		size *= len(a.ids)
	}

	combinedIDs := make([]CombinedID, 0, size)
	indices := make([]int, len(active))
	tuple := make([]string, len(active))

	for count := 0; count < size; count++ {
		for i, a := range active {
			tuple[i] = a.ids[indices[i]]
		}

		entry := CombinedID{Combined: identity.CombineKey(tuple...)}
		for i, a := range active {
			switch a.dim {
			case model.DimLocation:
				entry.LocationID = tuple[i]
			case model.DimClientISP:
				entry.ClientISPID = tuple[i]
			case model.DimTransitISP:
				entry.TransitISPID = tuple[i]
			}
			if a.isFacet {
				entry.FacetItemID = tuple[i]
			}
			if i == filterIdx {
				entry.FilterItemID = tuple[i]
			}
			if i == breakdownIdx {
				entry.BreakdownByItemID = tuple[i]
			}
		}
		combinedIDs = append(combinedIDs, entry)

		// Odometer increment, innermost (highest priority) dimension fastest.
		for i := len(indices) - 1; i >= 0; i-- {
			indices[i]++
			if indices[i] < len(active[i].ids) {
				break
			}
			indices[i] = 0
		}
	}

	return ResolvedCombination{CombinedType: combinedType, CombinedIDs: combinedIDs}
}
