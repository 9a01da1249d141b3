package formatter

import (
	"github.com/perfviz/netcompare/internal/chart"
	"github.com/perfviz/netcompare/internal/core/model"
	"github.com/perfviz/netcompare/internal/selection"
)

// Formatter renders a comparison report to stdout.
type Formatter interface {
	Format(report *Report) error
}

// Report is the render-ready summary of one pipeline run.
type Report struct {
	CombinedType string                    `json:"combinedType"`
	Metric       model.Metric              `json:"metric"`
	Aggregation  selection.TimeAggregation `json:"aggregation"`
	Combinations int                       `json:"combinations"`
	Joined       int                       `json:"joined"`
	Groups       []GroupSummary            `json:"groups"`
	Extents      map[string]chart.Extent   `json:"extents"`
	HourlyExt    map[string]chart.Extent   `json:"hourlyExtents"`
	TopFilters   []TopFilterSummary        `json:"topFilters,omitempty"`
	Colors       map[string]string         `json:"colors"`
}

// GroupSummary is one facet (or facet+breakdown) group of the report.
type GroupSummary struct {
	FacetID     string       `json:"facetId"`
	FacetLabel  string       `json:"facetLabel,omitempty"`
	BreakdownID string       `json:"breakdownId,omitempty"`
	Status      model.Status `json:"status"`
	Members     int          `json:"members"`
	Series      int          `json:"series"`
	Samples     int          `json:"samples"`
}

// TopFilterSummary is the suggested-filter ranking for one filter dimension.
type TopFilterSummary struct {
	FilterType string               `json:"filterType"`
	Status     model.Status         `json:"status"`
	Candidates []model.RankedEntity `json:"candidates"`
}

// New returns the formatter for an output format name, defaulting to table.
func New(format string) Formatter {
	switch format {
	case "json":
		return NewJSONFormatter()
	default:
		return NewTableFormatter()
	}
}
