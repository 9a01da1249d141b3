// Package selector wires the comparison pipeline together behind a memoized
// facade: every selector is a pure function of the current store snapshot
// and the selection, recomputed only when the store version or the selection
// fingerprint changes.
package selector

import (
	"sync"

	"github.com/bytedance/sonic"

	"github.com/perfviz/netcompare/internal/aggregate"
	"github.com/perfviz/netcompare/internal/chart"
	"github.com/perfviz/netcompare/internal/core/model"
	"github.com/perfviz/netcompare/internal/dataset"
	"github.com/perfviz/netcompare/internal/selection"
)

// topFilterLimit caps how many ranked filter candidates a top filter returns.
const topFilterLimit = 20

// Selectors is the memoized selector graph over one dataset store.
type Selectors struct {
	mu    sync.RWMutex
	store *dataset.Store
	cache *Cache
}

// New creates a selector graph over the given store snapshot.
func New(store *dataset.Store) *Selectors {
	return &Selectors{store: store, cache: NewCache()}
}

// SetStore swaps in a new store snapshot. Cached results from older versions
// stop matching and are recomputed on demand.
func (s *Selectors) SetStore(store *dataset.Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store = store
}

// Store returns the current store snapshot.
func (s *Selectors) Store() *dataset.Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store
}

// fingerprint builds a deterministic cache key from any JSON-encodable
// inputs.
func fingerprint(name string, inputs ...any) string {
	key := name
	for _, input := range inputs {
		encoded, err := sonic.Marshal(input)
		if err != nil {
			// Non-encodable inputs defeat memoization for this call only.
			return ""
		}
		key += "|" + string(encoded)
	}
	return key
}

// memoized runs compute against the current store, reusing the cached result
// when the key is known for the store's version.
func memoized[T any](s *Selectors, key string, compute func(*dataset.Store) T) T {
	store := s.Store()

	if key != "" {
		if cached, ok := s.cache.get(key, store.Version); ok {
			return cached.(T)
		}
	}

	value := compute(store)
	if key != "" {
		s.cache.set(key, store.Version, value)
	}
	return value
}

// Combination expands the selection into its combined type and id cross
// product.
func (s *Selectors) Combination(sel selection.Selection) selection.ResolvedCombination {
	return memoized(s, fingerprint("combination", sel), func(*dataset.Store) selection.ResolvedCombination {
		return selection.Expand(sel)
	})
}

// CombinedItems joins the expanded combinations against the store.
func (s *Selectors) CombinedItems(sel selection.Selection) []aggregate.CombinedItem {
	return memoized(s, fingerprint("combinedItems", sel), func(store *dataset.Store) []aggregate.CombinedItem {
		return aggregate.CombinedItems(store, s.Combination(sel))
	})
}

// TimeSeriesGroups produces the grouped, merged time series for the
// selection. Nil means no joined data exists yet.
func (s *Selectors) TimeSeriesGroups(sel selection.Selection) *aggregate.Grouping[*aggregate.CombinedTimeSeries] {
	return memoized(s, fingerprint("timeSeriesGroups", sel), func(store *dataset.Store) *aggregate.Grouping[*aggregate.CombinedTimeSeries] {
		return aggregate.GroupTimeSeries(s.CombinedItems(sel), s.Combination(sel).CombinedType)
	})
}

// HourlyGroups produces the grouped per-member hourly series for the
// selection and metric.
func (s *Selectors) HourlyGroups(sel selection.Selection, metric model.Metric) *aggregate.Grouping[[]aggregate.HourlyEntry] {
	return memoized(s, fingerprint("hourlyGroups", sel, metric.Value), func(store *dataset.Store) *aggregate.Grouping[[]aggregate.HourlyEntry] {
		return aggregate.GroupHourly(s.CombinedItems(sel), s.Combination(sel).CombinedType, metric)
	})
}

// TimeSeriesExtents computes the shared chart extents over the grouped time
// series.
func (s *Selectors) TimeSeriesExtents(sel selection.Selection, metric model.Metric) map[string]chart.Extent {
	return memoized(s, fingerprint("timeSeriesExtents", sel, metric.Value), func(store *dataset.Store) map[string]chart.Extent {
		return aggregate.TimeSeriesExtents(s.TimeSeriesGroups(sel), metric)
	})
}

// HourlyExtents computes the shared chart extents over the grouped hourly
// series.
func (s *Selectors) HourlyExtents(sel selection.Selection, metric model.Metric) map[string]chart.Extent {
	return memoized(s, fingerprint("hourlyExtents", sel, metric.Value), func(store *dataset.Store) map[string]chart.Extent {
		return aggregate.HourlyExtents(s.HourlyGroups(sel, metric), metric)
	})
}

// Colors assigns stable colors to every selected id, facet then filters, in
// selection order.
func (s *Selectors) Colors(sel selection.Selection) map[string]string {
	return memoized(s, fingerprint("colors", sel), func(*dataset.Store) map[string]string {
		return chart.ColorsFor(selection.ColorIDs(sel))
	})
}

// TopFilter returns the ranked filter candidates for a facet/filter pair with
// the already-selected ids removed, truncated to the top 20. The ranking's
// fetch status passes through untouched.
func (s *Selectors) TopFilter(facet, filter model.Dimension, selectedIDs []string) model.Resource[[]model.RankedEntity] {
	key := fingerprint("topFilter", facet, filter, selectedIDs)
	return memoized(s, key, func(store *dataset.Store) model.Resource[[]model.RankedEntity] {
		ranking := store.TopFilter(facet, filter)
		if ranking.Data == nil {
			return ranking
		}

		selected := make(map[string]struct{}, len(selectedIDs))
		for _, id := range selectedIDs {
			selected[id] = struct{}{}
		}

		candidates := make([]model.RankedEntity, 0, topFilterLimit)
		for _, candidate := range ranking.Data {
			if _, isSelected := selected[candidate.ID]; isSelected {
				continue
			}
			candidates = append(candidates, candidate)
			if len(candidates) == topFilterLimit {
				break
			}
		}

		return model.Resource[[]model.RankedEntity]{Status: ranking.Status, Data: candidates}
	})
}
