package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfviz/netcompare/internal/core/model"
	"github.com/perfviz/netcompare/internal/selection"
)

func resetFlags() {
	debug = false
	logFile = ""
	datasetPath = ""
	configPath = ""
	facetType = ""
	facetIDs = nil
	filter1 = ""
	filter2 = ""
	breakdownBy = ""
	metricName = ""
	startDate = ""
	endDate = ""
	aggregation = ""
	outputFormat = ""
	watchMode = false
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name        string
		spec        string
		expectError bool
		expectType  model.Dimension
		expectIDs   []string
	}{
		{
			name:       "empty is inactive",
			spec:       "",
			expectType: model.DimensionUnknown,
		},
		{
			name:       "single id",
			spec:       "clientIsp=AS7922",
			expectType: model.DimClientISP,
			expectIDs:  []string{"AS7922"},
		},
		{
			name:       "multiple ids with spaces",
			spec:       "transitIsp=AS3356, AS1299",
			expectType: model.DimTransitISP,
			expectIDs:  []string{"AS3356", "AS1299"},
		},
		{
			name:        "missing equals",
			spec:        "clientIsp",
			expectError: true,
		},
		{
			name:        "unknown dimension",
			spec:        "country=us",
			expectError: true,
		},
		{
			name:        "no ids",
			spec:        "clientIsp=,",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := parseFilter(tt.spec)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectType, filter.Type)
			assert.Equal(t, tt.expectIDs, filter.IDs)
		})
	}
}

func TestBuildSelection(t *testing.T) {
	resetFlags()
	facetType = "location"
	facetIDs = []string{"nyc", "lax"}
	filter1 = "clientIsp=AS7922"
	filter2 = "transitIsp=AS3356"
	breakdownBy = "filter1"

	sel, err := buildSelection()
	require.NoError(t, err)

	assert.Equal(t, model.DimLocation, sel.FacetType)
	assert.Equal(t, []string{"nyc", "lax"}, sel.FacetItemIDs)
	assert.Equal(t, model.DimClientISP, sel.Filter1.Type)
	require.NotNil(t, sel.Filter1.BreakdownBy)
	assert.True(t, *sel.Filter1.BreakdownBy)
	require.NotNil(t, sel.Filter2.BreakdownBy)
	assert.False(t, *sel.Filter2.BreakdownBy)
}

func TestBuildSelectionInvalidBreakdown(t *testing.T) {
	resetFlags()
	facetType = "location"
	breakdownBy = "filter9"

	_, err := buildSelection()
	assert.Error(t, err)
}

func TestBuildSelectionUnknownFacetDefaults(t *testing.T) {
	resetFlags()
	facetType = "continent"

	sel, err := buildSelection()
	require.NoError(t, err)
	assert.Equal(t, model.DimLocation, sel.FacetType)
}

func TestResolveAggregation(t *testing.T) {
	resetFlags()

	agg, err := resolveAggregation()
	require.NoError(t, err)
	assert.Equal(t, selection.AggregationDay, agg)

	aggregation = "hour"
	agg, err = resolveAggregation()
	require.NoError(t, err)
	assert.Equal(t, selection.AggregationHour, agg)

	aggregation = ""
	startDate, endDate = "2026-03-01", "2026-03-02"
	agg, err = resolveAggregation()
	require.NoError(t, err)
	assert.Equal(t, selection.AggregationHour, agg)

	startDate, endDate = "2026-03-01", "2026-03-31"
	agg, err = resolveAggregation()
	require.NoError(t, err)
	assert.Equal(t, selection.AggregationDay, agg)

	aggregation = "weekly"
	_, err = resolveAggregation()
	assert.Error(t, err)

	aggregation = ""
	startDate = "not-a-date"
	_, err = resolveAggregation()
	assert.Error(t, err)
}
