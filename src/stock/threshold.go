package stock

import "asset-stock/src/models"

// Level classifies a stock line against its alert threshold.
type Level string

const (
	LevelOK  Level = "OK"
	LevelLow Level = "LOW"
	LevelOut Level = "OUT"
)

// Default thresholds, expressed in container counts. A near-empty drum still
// counts as one container.
const (
	DefaultThreshold            = 5
	DefaultMeasurementThreshold = 2
)

// ThresholdFor resolves the alert threshold for a model key: an override
// replaces the type-aware default outright, including an override of zero.
func ThresholdFor(modelKey string, measurement bool, overrides map[string]int) int {
	if t, ok := overrides[modelKey]; ok {
		return t
	}
	if measurement {
		return DefaultMeasurementThreshold
	}
	return DefaultThreshold
}

// Classify buckets an in-storage container count against a threshold.
func Classify(inStorage, threshold int) Level {
	switch {
	case inStorage == 0:
		return LevelOut
	case inStorage <= threshold:
		return LevelLow
	default:
		return LevelOK
	}
}

// ClassifyRecord classifies one aggregated stock line.
func ClassifyRecord(rec ModelStock, overrides map[string]int) Level {
	threshold := ThresholdFor(rec.Key(), rec.BulkType == models.BulkTypeMeasurement, overrides)
	return Classify(rec.InStorage, threshold)
}

// AlertSummary counts stock lines per alert bucket for dashboard counters.
type AlertSummary struct {
	Low int `json:"low"`
	Out int `json:"out"`
}

// CountAlerts applies the classification across every aggregated record.
func CountAlerts(records []ModelStock, overrides map[string]int) AlertSummary {
	var summary AlertSummary
	for _, rec := range records {
		switch ClassifyRecord(rec, overrides) {
		case LevelLow:
			summary.Low++
		case LevelOut:
			summary.Out++
		}
	}
	return summary
}
