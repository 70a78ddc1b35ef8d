package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"asset-stock/src/models"
	"asset-stock/src/stock"
)

func TestThresholdForDefaults(t *testing.T) {
	assert.Equal(t, 5, stock.ThresholdFor("Router ISR 1100|Cisco", false, nil))
	assert.Equal(t, 2, stock.ThresholdFor("Kabel UTP|Belden", true, nil))
}

func TestThresholdForOverrideReplacesDefault(t *testing.T) {
	overrides := map[string]int{
		"Router ISR 1100|Cisco": 2,
		"Kabel UTP|Belden":      0,
	}

	assert.Equal(t, 2, stock.ThresholdFor("Router ISR 1100|Cisco", false, overrides))
	assert.Equal(t, 0, stock.ThresholdFor("Kabel UTP|Belden", true, overrides), "an override of zero is not the default")
	assert.Equal(t, 5, stock.ThresholdFor("Konektor RJ45|AMP", false, overrides))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, stock.LevelOut, stock.Classify(0, 5))
	assert.Equal(t, stock.LevelLow, stock.Classify(3, 5))
	assert.Equal(t, stock.LevelLow, stock.Classify(5, 5))
	assert.Equal(t, stock.LevelOK, stock.Classify(6, 5))
}

func TestClassifyOverrideScenario(t *testing.T) {
	// Default threshold 5 makes a count of 3 LOW; an override of 2 makes it OK.
	assert.Equal(t, stock.LevelLow, stock.Classify(3, stock.ThresholdFor("Router ISR 1100|Cisco", false, nil)))
	assert.Equal(t, stock.LevelOK, stock.Classify(3, stock.ThresholdFor("Router ISR 1100|Cisco", false, map[string]int{"Router ISR 1100|Cisco": 2})))
}

func TestClassifyMonotonic(t *testing.T) {
	// Walking the count down never jumps OK -> OUT without passing LOW.
	threshold := 4
	previous := stock.Classify(10, threshold)
	for count := 9; count >= 0; count-- {
		level := stock.Classify(count, threshold)
		if previous == stock.LevelOK && level == stock.LevelOut {
			t.Fatalf("count %d jumped OK -> OUT", count)
		}
		previous = level
	}
}

func TestClassifyZeroThresholdSkipsLow(t *testing.T) {
	for count := 0; count <= 10; count++ {
		level := stock.Classify(count, 0)
		assert.NotEqual(t, stock.LevelLow, level, "threshold 0 means LOW is unreachable")
	}
	assert.Equal(t, stock.LevelOut, stock.Classify(0, 0))
	assert.Equal(t, stock.LevelOK, stock.Classify(1, 0))
}

func TestCountAlerts(t *testing.T) {
	records := []stock.ModelStock{
		{Name: "Kabel UTP", Brand: "Belden", BulkType: models.BulkTypeMeasurement, InStorage: 1},  // LOW (default 2)
		{Name: "Router ISR 1100", Brand: "Cisco", BulkType: models.BulkTypeIndividual, InStorage: 0}, // OUT
		{Name: "Konektor RJ45", Brand: "AMP", BulkType: models.BulkTypeCount, InStorage: 20},      // OK
	}

	summary := stock.CountAlerts(records, nil)
	assert.Equal(t, stock.AlertSummary{Low: 1, Out: 1}, summary)

	// Raising the connector threshold flips it to LOW.
	summary = stock.CountAlerts(records, map[string]int{"Konektor RJ45|AMP": 25})
	assert.Equal(t, stock.AlertSummary{Low: 2, Out: 1}, summary)
}
