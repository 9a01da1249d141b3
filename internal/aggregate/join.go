// Package aggregate implements the join and grouping stages of the
// comparison pipeline: expanded id combinations are joined against the
// combined-record store, grouped by facet (and optionally breakdown) id, and
// merged into chart-ready series with propagated fetch statuses.
package aggregate

import (
	"github.com/perfviz/netcompare/internal/core/model"
	"github.com/perfviz/netcompare/internal/dataset"
	"github.com/perfviz/netcompare/internal/selection"
)

// CombinedItem is one id combination joined with its stored record.
type CombinedItem struct {
	ID   selection.CombinedID
	Data *model.CombinedRecord
}

// CombinedItems joins each expanded combination against the store for the
// resolved combined type. Combinations without a stored record are dropped,
// so the output is at most as long as the input. Unrecognized combined types
// have no store and yield nil.
func CombinedItems(store *dataset.Store, resolved selection.ResolvedCombination) []CombinedItem {
	records := store.CombinedRecords(resolved.CombinedType)
	if records == nil {
		return nil
	}

	items := make([]CombinedItem, 0, len(resolved.CombinedIDs))
	for _, id := range resolved.CombinedIDs {
		record := records[id.Combined]
		if record == nil {
			continue
		}
		items = append(items, CombinedItem{ID: id, Data: record})
	}

	return items
}
