// Package dataset owns the raw data the pipeline reads: entity stores,
// combined-record stores keyed by composite id, and top-N filter rankings.
// The pipeline never mutates a store; reloads produce a fresh one with a
// bumped version.
package dataset

import (
	"github.com/perfviz/netcompare/internal/core/model"
	"github.com/perfviz/netcompare/internal/selection"
)

// TopFilterKey identifies one top-N ranking: candidates for filterType when
// faceting by facetType.
type TopFilterKey struct {
	Facet  model.Dimension
	Filter model.Dimension
}

// Store is one immutable snapshot of the loaded dataset.
type Store struct {
	// Version increases on every reload that actually changed the data.
	// The selector cache keys on it.
	Version uint64

	Locations   map[string]*model.Entity
	ClientISPs  map[string]*model.Entity
	TransitISPs map[string]*model.Entity

	Combined map[selection.CombinedType]map[string]*model.CombinedRecord

	TopFilters map[TopFilterKey]model.Resource[[]model.RankedEntity]
}

// NewStore returns an empty store with all maps initialized.
func NewStore() *Store {
	return &Store{
		Locations:   make(map[string]*model.Entity),
		ClientISPs:  make(map[string]*model.Entity),
		TransitISPs: make(map[string]*model.Entity),
		Combined:    make(map[selection.CombinedType]map[string]*model.CombinedRecord),
		TopFilters:  make(map[TopFilterKey]model.Resource[[]model.RankedEntity]),
	}
}

// Entities returns the entity map for a dimension, nil for unknown
// dimensions.
func (s *Store) Entities(dim model.Dimension) map[string]*model.Entity {
	switch dim {
	case model.DimLocation:
		return s.Locations
	case model.DimClientISP:
		return s.ClientISPs
	case model.DimTransitISP:
		return s.TransitISPs
	default:
		return nil
	}
}

// CombinedRecords returns the combined-record map for a combined type, nil
// for unrecognized types.
func (s *Store) CombinedRecords(t selection.CombinedType) map[string]*model.CombinedRecord {
	return s.Combined[t]
}

// TopFilter returns the ranked filter candidates for a facet/filter pair.
// Missing rankings report as not fetched.
func (s *Store) TopFilter(facet, filter model.Dimension) model.Resource[[]model.RankedEntity] {
	if ranking, ok := s.TopFilters[TopFilterKey{Facet: facet, Filter: filter}]; ok {
		return ranking
	}
	return model.Resource[[]model.RankedEntity]{Status: model.StatusNotFetched}
}
