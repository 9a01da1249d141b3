package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfviz/netcompare/internal/core/model"
	"github.com/perfviz/netcompare/internal/dataset"
	"github.com/perfviz/netcompare/internal/identity"
	"github.com/perfviz/netcompare/internal/selection"
	"github.com/perfviz/netcompare/internal/selector"
)

func reportStore() *dataset.Store {
	store := dataset.NewStore()
	store.Version = 1
	store.Combined[selection.CombinedLocationClient] = map[string]*model.CombinedRecord{
		identity.CombineKey("nyc", "AS7922"): {
			Time: model.TimeData{
				TimeSeries: model.Resource[[]model.TimeSeriesPoint]{
					Status: model.StatusSuccess,
					Data: []model.TimeSeriesPoint{
						{Date: "2026-01-01", Count: 10, Download: 80.0},
						{Date: "2026-01-02", Count: 6, Download: 95.0},
					},
				},
				Hourly: model.Resource[[]model.HourlyPoint]{
					Status: model.StatusSuccess,
					Data:   []model.HourlyPoint{{Hour: 9, Count: 4, Download: 70.0}},
				},
			},
		},
		identity.CombineKey("lax", "AS7922"): {
			Time: model.TimeData{
				TimeSeries: model.Resource[[]model.TimeSeriesPoint]{Status: model.StatusError},
			},
		},
	}
	store.Locations["nyc"] = &model.Entity{
		ID: "nyc",
		Info: model.Resource[model.EntityInfo]{
			Status: model.StatusSuccess,
			Data:   model.EntityInfo{ID: "nyc", Label: "New York"},
		},
	}
	store.TopFilters[dataset.TopFilterKey{Facet: model.DimLocation, Filter: model.DimClientISP}] =
		model.Resource[[]model.RankedEntity]{
			Status: model.StatusSuccess,
			Data: []model.RankedEntity{
				{ID: "AS7922", Label: "Comcast", Rank: 1, Count: 900},
				{ID: "AS701", Label: "Verizon", Rank: 2, Count: 500},
			},
		}
	return store
}

func TestBuildReport(t *testing.T) {
	selectors := selector.New(reportStore())
	sel := selection.Selection{
		FacetType:    model.DimLocation,
		FacetItemIDs: []string{"nyc", "lax", "sea"},
		Filter1:      selection.FilterDimension{Type: model.DimClientISP, IDs: []string{"AS7922"}},
	}
	metric := model.MetricByValue("download")

	report := buildReport(selectors, sel, metric, selection.AggregationDay, nil)

	assert.Equal(t, "location-clientIsp", report.CombinedType)
	assert.Equal(t, 3, report.Combinations)
	assert.Equal(t, 2, report.Joined) // "sea" has no stored record

	require.Len(t, report.Groups, 2)
	assert.Equal(t, "lax", report.Groups[0].FacetID)
	assert.Equal(t, model.StatusError, report.Groups[0].Status)
	assert.Equal(t, "", report.Groups[0].FacetLabel) // no entity loaded for lax
	assert.Equal(t, "nyc", report.Groups[1].FacetID)
	assert.Equal(t, "New York", report.Groups[1].FacetLabel)
	assert.Equal(t, model.StatusSuccess, report.Groups[1].Status)
	assert.Equal(t, 16, report.Groups[1].Samples)

	assert.Equal(t, 80.0, report.Extents["download"].Min())
	assert.Equal(t, 95.0, report.Extents["download"].Max())
	assert.Equal(t, 70.0, report.HourlyExt["download"].Min())

	// The already-selected client ISP is removed from its own ranking.
	require.Len(t, report.TopFilters, 1)
	assert.Equal(t, "clientIsp", report.TopFilters[0].FilterType)
	require.Len(t, report.TopFilters[0].Candidates, 1)
	assert.Equal(t, "AS701", report.TopFilters[0].Candidates[0].ID)

	assert.Len(t, report.Colors, 4)
}

func TestBuildReportEmptySelection(t *testing.T) {
	selectors := selector.New(reportStore())
	sel := selection.Selection{
		FacetType:    model.DimLocation,
		FacetItemIDs: []string{"nyc"},
	}
	metric := model.MetricByValue("download")

	report := buildReport(selectors, sel, metric, selection.AggregationDay, nil)

	assert.Equal(t, "", report.CombinedType)
	assert.Zero(t, report.Combinations)
	assert.Empty(t, report.Groups)
	assert.Empty(t, report.Extents)
	assert.Empty(t, report.HourlyExt)
}

func TestBuildReportCustomPalette(t *testing.T) {
	selectors := selector.New(reportStore())
	sel := selection.Selection{
		FacetType:    model.DimLocation,
		FacetItemIDs: []string{"nyc"},
	}
	metric := model.MetricByValue("download")

	report := buildReport(selectors, sel, metric, selection.AggregationDay, []string{"#abc"})
	assert.Equal(t, "#abc", report.Colors["nyc"])
}
