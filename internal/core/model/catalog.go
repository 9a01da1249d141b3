package model

import (
	"github.com/perfviz/netcompare/internal/util"
)

// Metric describes one chartable measurement metric.
type Metric struct {
	Value   string `json:"value" yaml:"value"`
	Label   string `json:"label" yaml:"label"`
	DataKey string `json:"dataKey" yaml:"dataKey"`
	Unit    string `json:"unit" yaml:"unit"`
}

// Metrics is the static metric catalog. The first entry is the fallback for
// unknown metric values.
var Metrics = []Metric{
	{Value: "download", Label: "Download Speed", DataKey: "download", Unit: "Mbps"},
	{Value: "upload", Label: "Upload Speed", DataKey: "upload", Unit: "Mbps"},
	{Value: "rtt", Label: "Round-trip Time", DataKey: "rtt", Unit: "ms"},
	{Value: "retransmit", Label: "Retransmit Rate", DataKey: "retransmit", Unit: "%"},
}

// MetricByValue looks up a metric by its value. Unknown values fall back to
// the first catalog entry with a warning; lookup never fails.
func MetricByValue(value string) Metric {
	for _, m := range Metrics {
		if m.Value == value {
			return m
		}
	}
	util.LogWarnf("Unknown metric %q, falling back to %q", value, Metrics[0].Value)
	return Metrics[0]
}

// FacetType describes one selectable facet dimension.
type FacetType struct {
	Value     string    `json:"value" yaml:"value"`
	Label     string    `json:"label" yaml:"label"`
	Dimension Dimension `json:"-" yaml:"-"`
}

// FacetTypes is the static facet-type catalog, in canonical dimension order.
// The first entry is the fallback for unknown facet-type values.
var FacetTypes = []FacetType{
	{Value: "location", Label: "Location", Dimension: DimLocation},
	{Value: "clientIsp", Label: "Client ISP", Dimension: DimClientISP},
	{Value: "transitIsp", Label: "Transit ISP", Dimension: DimTransitISP},
}

// FacetTypeByValue looks up a facet type by its value. Unknown values fall
// back to the first catalog entry with a warning; lookup never fails.
func FacetTypeByValue(value string) FacetType {
	for _, f := range FacetTypes {
		if f.Value == value {
			return f
		}
	}
	util.LogWarnf("Unknown facet type %q, falling back to %q", value, FacetTypes[0].Value)
	return FacetTypes[0]
}
