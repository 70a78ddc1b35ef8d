package stock

import (
	"github.com/shopspring/decimal"

	"asset-stock/src/models"
)

// MaxUsageDetails caps the recent-consumption list carried per stock line.
const MaxUsageDetails = 5

// UsageDetail is one recent consumption event shown on a stock line.
type UsageDetail struct {
	DocNumber string           `json:"doc_number"`
	Qty       float64          `json:"qty"`
	Kind      models.UsageKind `json:"kind"`
}

// ModelStock is the aggregated stock picture of one model key.
type ModelStock struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`

	BulkType          models.BulkType `json:"bulk_type"`
	UnitOfMeasure     string          `json:"unit_of_measure"`
	BaseUnitOfMeasure string          `json:"base_unit_of_measure,omitempty"`

	// Physical record counts by status bucket.
	InStorage int `json:"in_storage"`
	InUse     int `json:"in_use"`
	Damaged   int `json:"damaged"`
	Total     int `json:"total"`

	ValueInStorage decimal.Decimal `json:"value_in_storage"`

	// Content balances, measurement models only.
	StorageBalance    float64 `json:"storage_balance"`
	InUseBalance      float64 `json:"in_use_balance"`
	DamagedBalance    float64 `json:"damaged_balance"`
	GrandTotalBalance float64 `json:"grand_total_balance"`

	TotalConsumed float64       `json:"total_consumed"`
	UsageDetails  []UsageDetail `json:"usage_details,omitempty"`
}

// Key returns the name|brand identity of the stock line.
func (m ModelStock) Key() string {
	return models.ModelKey(m.Name, m.Brand)
}

// Warnings counts data-quality anomalies observed while aggregating. They
// never abort the fold; the caller surfaces them as a warning.
type Warnings struct {
	OutOfRangeBalances int `json:"out_of_range_balances"`
	OrphanedChildren   int `json:"orphaned_children"`
}

// AggregateResult is the output of one aggregation pass.
type AggregateResult struct {
	Records  []ModelStock `json:"records"`
	Warnings Warnings     `json:"warnings"`
}

// Bucket is one of the three status groups every live asset falls into.
type Bucket int

const (
	BucketStorage Bucket = iota
	BucketInUse
	BucketDamaged
)

// StatusBucket maps every non-decommissioned status to exactly one bucket.
// An asset awaiting return verification is still out with its holder, so it
// counts as in use until the return is verified.
func StatusBucket(s models.AssetStatus) Bucket {
	switch s {
	case models.StatusInStorage:
		return BucketStorage
	case models.StatusDamaged, models.StatusUnderRepair, models.StatusOutForRepair:
		return BucketDamaged
	default:
		// in_use, in_custody, awaiting_return
		return BucketInUse
	}
}

// Aggregate folds the asset registry, grouped by normalized model key, into
// per-model stock records, then merges in the consumption ledger. It is a
// pure function over the snapshot: inputs are never mutated, repeated calls
// yield identical output.
func Aggregate(assets []models.Asset, catalog []models.StandardItem, usage []models.MaterialUsage) AggregateResult {
	byKey := make(map[string]models.StandardItem, len(catalog))
	for _, m := range catalog {
		byKey[m.Key()] = m
	}

	records := make(map[string]*ModelStock)
	order := make([]string, 0)
	var warnings Warnings

	record := func(key, name, brand string) *ModelStock {
		if rec, ok := records[key]; ok {
			return rec
		}
		rec := &ModelStock{
			Name:           name,
			Brand:          brand,
			BulkType:       models.BulkTypeIndividual,
			ValueInStorage: decimal.Zero,
		}
		if def, ok := byKey[key]; ok {
			rec.BulkType = def.BulkType
			rec.UnitOfMeasure = def.UnitOfMeasure
			if def.BaseUnitOfMeasure != nil {
				rec.BaseUnitOfMeasure = *def.BaseUnitOfMeasure
			}
		}
		records[key] = rec
		order = append(order, key)
		return rec
	}

	// Declared models appear even with zero assets; empty ones are dropped
	// at the end unless consumption keeps them visible.
	for _, def := range catalog {
		record(def.Key(), def.Name, def.Brand)
	}

	for _, a := range assets {
		if a.Status == models.StatusDecommissioned {
			continue
		}

		key := a.ModelKey()
		def, cataloged := byKey[key]
		if !cataloged && a.IsChild() {
			warnings.OrphanedChildren++
		}
		rec := record(key, a.NormalizedName(), a.Brand)

		rec.Total++
		bucket := StatusBucket(a.Status)
		switch bucket {
		case BucketStorage:
			rec.InStorage++
			rec.ValueInStorage = rec.ValueInStorage.Add(a.PurchasePrice)
		case BucketInUse:
			rec.InUse++
		case BucketDamaged:
			rec.Damaged++
		}

		if cataloged && def.IsMeasurement() {
			balance := a.EffectiveBalance()
			if balance < 0 || balance > a.InitialBalance {
				warnings.OutOfRangeBalances++
				balance = clamp(balance, 0, a.InitialBalance)
			}
			switch bucket {
			case BucketStorage:
				rec.StorageBalance += balance
			case BucketInUse:
				rec.InUseBalance += balance
			case BucketDamaged:
				rec.DamagedBalance += balance
			}
			if !a.IsChild() {
				rec.GrandTotalBalance += a.InitialBalance
			}
		}
	}

	for _, u := range usage {
		key := models.ModelKey(u.Name, u.Brand)
		rec := record(key, u.Name, u.Brand)

		rec.InUseBalance += u.Qty
		rec.TotalConsumed += u.Qty
		rec.UsageDetails = append(rec.UsageDetails, UsageDetail{
			DocNumber: u.DocNumber,
			Qty:       u.Qty,
			Kind:      u.Kind,
		})
		if len(rec.UsageDetails) > MaxUsageDetails {
			rec.UsageDetails = rec.UsageDetails[len(rec.UsageDetails)-MaxUsageDetails:]
		}
	}

	result := AggregateResult{Records: make([]ModelStock, 0, len(order)), Warnings: warnings}
	for _, key := range order {
		rec := records[key]
		if rec.Total == 0 && rec.TotalConsumed == 0 {
			continue
		}
		result.Records = append(result.Records, *rec)
	}
	return result
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
