package dataset

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/perfviz/netcompare/internal/core/model"
	"github.com/perfviz/netcompare/internal/selection"
	"github.com/perfviz/netcompare/internal/util"
)

// datasetFile is the on-disk JSON shape of a pre-fetched dataset.
type datasetFile struct {
	Locations   map[string]*model.Entity                    `json:"locations"`
	ClientISPs  map[string]*model.Entity                    `json:"clientIsps"`
	TransitISPs map[string]*model.Entity                    `json:"transitIsps"`
	Combined    map[string]map[string]*model.CombinedRecord `json:"combined"`
	// Keys are "facetType:filterType", e.g. "location:clientIsp".
	TopFilters map[string]model.Resource[[]model.RankedEntity] `json:"topFilters"`
}

// Loader reads a dataset file into a Store, skipping the reload when the
// file fingerprint is unchanged since the last load.
type Loader struct {
	path string

	mu          sync.Mutex
	version     uint64
	fingerprint string
	store       *Store
}

// NewLoader creates a loader for the dataset file at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Path returns the dataset file path.
func (l *Loader) Path() string {
	return l.path
}

// Version returns the version of the last loaded store, zero before the
// first load.
func (l *Loader) Version() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.version
}

// Load returns the current store, re-reading the file only when its
// fingerprint changed. The returned store is immutable; a reload builds a new
// one with the next version.
func (l *Loader) Load() (*Store, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	info, err := util.GetFileInfo(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat dataset %s: %w", l.path, err)
	}

	if l.store != nil && info.Fingerprint() == l.fingerprint {
		return l.store, nil
	}

	raw, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", l.path, err)
	}

	var file datasetFile
	if err := sonic.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", l.path, err)
	}

	l.version++
	l.fingerprint = info.Fingerprint()
	l.store = buildStore(&file, l.version)

	util.LogDebugf("Loaded dataset %s (version %d, %d locations, %d client ISPs, %d transit ISPs)",
		l.path, l.store.Version, len(l.store.Locations), len(l.store.ClientISPs), len(l.store.TransitISPs))

	return l.store, nil
}

// buildStore converts the decoded file into a Store snapshot.
func buildStore(file *datasetFile, version uint64) *Store {
	store := NewStore()
	store.Version = version

	fillEntities(store.Locations, file.Locations)
	fillEntities(store.ClientISPs, file.ClientISPs)
	fillEntities(store.TransitISPs, file.TransitISPs)

	for typeName, records := range file.Combined {
		combinedType := recognizeCombinedType(typeName)
		if combinedType == selection.CombinedNone {
			util.LogWarnf("Skipping unrecognized combined type %q in dataset", typeName)
			continue
		}
		store.Combined[combinedType] = records
	}

	for key, ranking := range file.TopFilters {
		facet, filter, ok := parseTopFilterKey(key)
		if !ok {
			util.LogWarnf("Skipping malformed top-filter key %q in dataset", key)
			continue
		}
		store.TopFilters[TopFilterKey{Facet: facet, Filter: filter}] = ranking
	}

	return store
}

func fillEntities(dst, src map[string]*model.Entity) {
	for id, entity := range src {
		if entity == nil {
			continue
		}
		if entity.ID == "" {
			entity.ID = id
		}
		dst[id] = entity
	}
}

func recognizeCombinedType(name string) selection.CombinedType {
	switch t := selection.CombinedType(name); t {
	case selection.CombinedClientTransit,
		selection.CombinedLocationClient,
		selection.CombinedLocationTransit,
		selection.CombinedLocationClientTransit:
		return t
	default:
		return selection.CombinedNone
	}
}

func parseTopFilterKey(key string) (facet, filter model.Dimension, ok bool) {
	parts := strings.Split(key, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	facet, facetOK := model.ParseDimension(parts[0])
	filter, filterOK := model.ParseDimension(parts[1])
	return facet, filter, facetOK && filterOK
}
