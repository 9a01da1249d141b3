package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfviz/netcompare/internal/core/model"
	"github.com/perfviz/netcompare/internal/selection"
)

const testDataset = `{
  "locations": {
    "nyc": {
      "info": {"status": "success", "data": {"id": "nyc", "label": "New York"}},
      "time": {
        "timeSeries": {"status": "success", "data": [{"date": "2026-01-01", "count": 12, "download": 85.2}]},
        "hourly": {"status": "not-fetched"}
      }
    }
  },
  "clientIsps": {
    "AS7922": {
      "info": {"status": "success", "data": {"id": "AS7922", "label": "Comcast", "asn": "7922"}},
      "time": {
        "timeSeries": {"status": "fetching"},
        "hourly": {"status": "not-fetched"}
      }
    }
  },
  "transitIsps": {},
  "combined": {
    "location-clientIsp": {
      "nyc_AS7922": {
        "time": {
          "timeSeries": {"status": "success", "data": [{"date": "2026-01-01", "count": 7, "download": 42.0}]},
          "hourly": {"status": "success", "data": [{"hour": 3, "count": 2, "download": 30.5}]}
        }
      }
    },
    "bogus-type": {}
  },
  "topFilters": {
    "location:clientIsp": {"status": "success", "data": [{"id": "AS7922", "label": "Comcast", "rank": 1, "count": 900}]},
    "weird-key": {"status": "success"}
  }
}`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoaderLoad(t *testing.T) {
	loader := NewLoader(writeDataset(t, testDataset))

	store, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), store.Version)

	require.Contains(t, store.Locations, "nyc")
	assert.Equal(t, "nyc", store.Locations["nyc"].ID)
	assert.Equal(t, "New York", store.Locations["nyc"].Info.Data.Label)
	assert.Equal(t, model.StatusFetching, store.ClientISPs["AS7922"].Time.TimeSeries.Status)

	records := store.CombinedRecords(selection.CombinedLocationClient)
	require.NotNil(t, records)
	require.Contains(t, records, "nyc_AS7922")
	assert.Equal(t, 7, records["nyc_AS7922"].Time.TimeSeries.Data[0].Count)

	// Unrecognized combined types and malformed top-filter keys are skipped.
	assert.Len(t, store.Combined, 1)
	assert.Len(t, store.TopFilters, 1)

	ranking := store.TopFilter(model.DimLocation, model.DimClientISP)
	assert.Equal(t, model.StatusSuccess, ranking.Status)
	require.Len(t, ranking.Data, 1)
	assert.Equal(t, "AS7922", ranking.Data[0].ID)
}

func TestLoaderSkipsUnchangedFile(t *testing.T) {
	loader := NewLoader(writeDataset(t, testDataset))

	first, err := loader.Load()
	require.NoError(t, err)
	second, err := loader.Load()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, uint64(1), second.Version)
}

func TestLoaderReloadBumpsVersion(t *testing.T) {
	path := writeDataset(t, testDataset)
	loader := NewLoader(path)

	first, err := loader.Load()
	require.NoError(t, err)

	// Grow the file so size, and therefore the fingerprint, changes.
	require.NoError(t, os.WriteFile(path, []byte(testDataset+"\n  "), 0644))

	second, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, first.Version+1, second.Version)
}

func TestLoaderErrors(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "missing.json")).Load()
	assert.Error(t, err)

	_, err = NewLoader(writeDataset(t, "{not json")).Load()
	assert.Error(t, err)
}

func TestStoreAccessors(t *testing.T) {
	store := NewStore()

	assert.NotNil(t, store.Entities(model.DimLocation))
	assert.NotNil(t, store.Entities(model.DimClientISP))
	assert.NotNil(t, store.Entities(model.DimTransitISP))
	assert.Nil(t, store.Entities(model.DimensionUnknown))

	assert.Nil(t, store.CombinedRecords(selection.CombinedNone))
	assert.Nil(t, store.CombinedRecords(selection.CombinedClientTransit))

	assert.Equal(t, model.StatusNotFetched, store.TopFilter(model.DimLocation, model.DimTransitISP).Status)
}
