package chart

import (
	"sort"

	"github.com/perfviz/netcompare/internal/core/model"
)

// CountPoint is a per-timestamp sample count derived from a merged group of
// time series.
type CountPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// TimeSeriesCounts sums sample counts per timestamp across a group of
// series, sorted by date. Empty input yields an empty slice.
func TimeSeriesCounts(series [][]model.TimeSeriesPoint) []CountPoint {
	byDate := make(map[string]int)
	for _, s := range series {
		for _, p := range s {
			byDate[p.Date] += p.Count
		}
	}

	counts := make([]CountPoint, 0, len(byDate))
	for date, count := range byDate {
		counts = append(counts, CountPoint{Date: date, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Date < counts[j].Date
	})

	return counts
}

// HourlyBucket is one chart-ready hour-of-day bucket.
type HourlyBucket struct {
	Hour  int     `json:"hour"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// WrangleHourly turns raw hourly points into a dense 24-bucket series for
// the active metric. Points sharing an hour merge with a count-weighted mean;
// hours with no samples stay at zero count.
func WrangleHourly(points []model.HourlyPoint, metric model.Metric) []HourlyBucket {
	buckets := make([]HourlyBucket, 24)
	weighted := make([]float64, 24)

	for i := range buckets {
		buckets[i].Hour = i
	}

	for _, p := range points {
		if p.Hour < 0 || p.Hour > 23 {
			continue
		}
		v, ok := p.Value(metric.DataKey)
		if !ok {
			continue
		}
		buckets[p.Hour].Count += p.Count
		weighted[p.Hour] += v * float64(p.Count)
	}

	for i := range buckets {
		if buckets[i].Count > 0 {
			buckets[i].Value = weighted[i] / float64(buckets[i].Count)
		}
	}

	return buckets
}
