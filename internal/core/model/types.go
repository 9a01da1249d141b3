package model

// Resource is a fetchable resource: a fetch status plus the data, which is
// absent (zero value, nil for slices) until the fetch succeeds.
type Resource[T any] struct {
	Status Status `json:"status"`
	Data   T      `json:"data,omitempty"`
}

// TimeSeriesPoint is one dated measurement sample aggregate.
type TimeSeriesPoint struct {
	Date       string  `json:"date"` // YYYY-MM-DD for daily, RFC3339 for hourly buckets
	Count      int     `json:"count"`
	Download   float64 `json:"download"`
	Upload     float64 `json:"upload"`
	RTT        float64 `json:"rtt"`
	Retransmit float64 `json:"retransmit"`
}

// Value returns the metric value selected by dataKey. The boolean is false
// for unknown keys.
func (p TimeSeriesPoint) Value(dataKey string) (float64, bool) {
	switch dataKey {
	case "download":
		return p.Download, true
	case "upload":
		return p.Upload, true
	case "rtt":
		return p.RTT, true
	case "retransmit":
		return p.Retransmit, true
	default:
		return 0, false
	}
}

// HourlyPoint is one hour-of-day bucketed measurement aggregate.
type HourlyPoint struct {
	Hour       int     `json:"hour"` // 0-23
	Count      int     `json:"count"`
	Download   float64 `json:"download"`
	Upload     float64 `json:"upload"`
	RTT        float64 `json:"rtt"`
	Retransmit float64 `json:"retransmit"`
}

// Value returns the metric value selected by dataKey. The boolean is false
// for unknown keys.
func (p HourlyPoint) Value(dataKey string) (float64, bool) {
	switch dataKey {
	case "download":
		return p.Download, true
	case "upload":
		return p.Upload, true
	case "rtt":
		return p.RTT, true
	case "retransmit":
		return p.Retransmit, true
	default:
		return 0, false
	}
}

// TimeData bundles the two time-keyed resources every entity and combined
// record carries.
type TimeData struct {
	TimeSeries Resource[[]TimeSeriesPoint] `json:"timeSeries"`
	Hourly     Resource[[]HourlyPoint]     `json:"hourly"`
}

// EntityInfo is the static metadata of an entity.
type EntityInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	// Location entities carry a region path, ISPs an AS number.
	Parent string `json:"parent,omitempty"`
	ASN    string `json:"asn,omitempty"`
}

// Entity is one location, client ISP, or transit ISP with its fetched data.
type Entity struct {
	ID   string               `json:"id"`
	Info Resource[EntityInfo] `json:"info"`
	Time TimeData             `json:"time"`
}

// CombinedRecord is the joined measurement data stored under one composite
// key. It is externally supplied and read-only from the pipeline's view.
type CombinedRecord struct {
	Time TimeData `json:"time"`
}

// RankedEntity is one candidate in a top-N ranking of filter entities.
type RankedEntity struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Rank  int     `json:"rank"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}
