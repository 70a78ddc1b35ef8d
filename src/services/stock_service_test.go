package services_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"asset-stock/src/models"
	"asset-stock/src/repositories"
	"asset-stock/src/services"
	"asset-stock/src/stock"
)

type fixture struct {
	db     *gorm.DB
	stocks *services.StockService
	assets *services.AssetService
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Category{},
		&models.ItemType{},
		&models.StandardItem{},
		&models.Asset{},
		&models.Reservation{},
		&models.MaterialUsage{},
		&models.ThresholdOverride{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	assetRepo := &repositories.AssetRepository{DB: db}
	catalogRepo := &repositories.CatalogRepository{DB: db}
	ledgerRepo := &repositories.LedgerRepository{DB: db}
	thresholdRepo := &repositories.ThresholdRepository{DB: db}

	return &fixture{
		db: db,
		stocks: &services.StockService{
			DB:         db,
			Assets:     assetRepo,
			Catalog:    catalogRepo,
			Ledger:     ledgerRepo,
			Thresholds: thresholdRepo,
			Log:        zap.NewNop(),
		},
		assets: &services.AssetService{
			DB:      db,
			Assets:  assetRepo,
			Catalog: catalogRepo,
			Ledger:  ledgerRepo,
			Log:     zap.NewNop(),
		},
	}
}

func (f *fixture) seedCableModel(t *testing.T) {
	t.Helper()
	meter := "Meter"
	capacity := 305.0
	_, err := f.assets.CreateModel(services.CreateModelRequest{
		Category:          "Jaringan",
		Type:              "Kabel",
		Name:              "Kabel UTP",
		Brand:             "Belden",
		BulkType:          "measurement",
		UnitOfMeasure:     "Roll",
		BaseUnitOfMeasure: &meter,
		QuantityPerUnit:   &capacity,
	})
	if err != nil {
		t.Fatalf("seed cable model: %v", err)
	}
}

func (f *fixture) seedCableDrum(t *testing.T, initial float64) *models.Asset {
	t.Helper()
	asset, err := f.assets.CreateAsset(services.CreateAssetRequest{
		Name:           "Kabel UTP",
		Brand:          "Belden",
		InitialBalance: &initial,
		PurchasePrice:  decimal.NewFromInt(1500000),
		CreatedBy:      "tester",
	})
	if err != nil {
		t.Fatalf("seed cable drum: %v", err)
	}
	return asset
}

func (f *fixture) overviewRecord(t *testing.T, key string) services.OverviewRecord {
	t.Helper()
	overview, err := f.stocks.Overview()
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	for _, rec := range overview.Records {
		if rec.Key() == key {
			return rec
		}
	}
	t.Fatalf("no overview record for %s", key)
	return services.OverviewRecord{}
}

func TestCatalogValidation(t *testing.T) {
	f := setupFixture(t)

	t.Run("measurement model requires base unit and capacity", func(t *testing.T) {
		_, err := f.assets.CreateModel(services.CreateModelRequest{
			Category: "Jaringan", Type: "Kabel",
			Name: "Kabel Drop Core", Brand: "Falcom",
			BulkType: "measurement", UnitOfMeasure: "Roll",
		})
		assert.Error(t, err)
	})

	t.Run("non-measurement model rejects content fields", func(t *testing.T) {
		meter := "Meter"
		_, err := f.assets.CreateModel(services.CreateModelRequest{
			Category: "Jaringan", Type: "Perangkat Aktif",
			Name: "Router ISR 1100", Brand: "Cisco",
			BulkType: "individual", UnitOfMeasure: "Unit",
			BaseUnitOfMeasure: &meter,
		})
		assert.Error(t, err)
	})

	t.Run("duplicate model key rejected", func(t *testing.T) {
		f.seedCableModel(t)
		meter := "Meter"
		capacity := 500.0
		_, err := f.assets.CreateModel(services.CreateModelRequest{
			Category: "Jaringan", Type: "Kabel",
			Name: "Kabel UTP", Brand: "Belden",
			BulkType: "measurement", UnitOfMeasure: "Roll",
			BaseUnitOfMeasure: &meter, QuantityPerUnit: &capacity,
		})
		assert.Error(t, err)
	})
}

func TestOverviewEndToEnd(t *testing.T) {
	f := setupFixture(t)
	f.seedCableModel(t)
	f.seedCableDrum(t, 305)

	rec := f.overviewRecord(t, "Kabel UTP|Belden")
	assert.Equal(t, 1, rec.InStorage)
	assert.Equal(t, 305.0, rec.StorageBalance)
	assert.Equal(t, 305.0, rec.GrandTotalBalance)
	assert.Equal(t, 2, rec.Threshold, "measurement default")
	assert.Equal(t, stock.LevelLow, rec.Level)
	assert.True(t, rec.ValueInStorage.Equal(decimal.NewFromInt(1500000)))
}

func TestSplitContainerPreservesGrandTotal(t *testing.T) {
	f := setupFixture(t)
	f.seedCableModel(t)
	drum := f.seedCableDrum(t, 305)

	before := f.overviewRecord(t, "Kabel UTP|Belden")

	child, err := f.assets.SplitContainer(services.SplitContainerRequest{
		AssetID:   drum.ID,
		Qty:       50,
		CreatedBy: "tester",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Kabel UTP (Potongan)", child.Name)
	assert.Equal(t, &drum.ID, child.ParentAssetID)
	assert.Equal(t, 50.0, child.InitialBalance)

	after := f.overviewRecord(t, "Kabel UTP|Belden")
	assert.Equal(t, before.GrandTotalBalance, after.GrandTotalBalance, "split must not change total content")
	assert.Equal(t, before.StorageBalance, after.StorageBalance)
	assert.Equal(t, before.InStorage+1, after.InStorage)

	t.Run("split larger than remaining balance rejected", func(t *testing.T) {
		_, err := f.assets.SplitContainer(services.SplitContainerRequest{
			AssetID:   drum.ID,
			Qty:       400,
			CreatedBy: "tester",
		})
		assert.Error(t, err)
	})
}

func TestRecordUsageDrawsDownContainers(t *testing.T) {
	f := setupFixture(t)
	f.seedCableModel(t)
	first := f.seedCableDrum(t, 100)
	second := f.seedCableDrum(t, 305)

	_, err := f.assets.RecordUsage(services.RecordUsageRequest{
		Name: "Kabel UTP", Brand: "Belden",
		Qty: 150, DocNumber: "INST-001", Kind: "installation",
	})
	assert.NoError(t, err)

	// Oldest drum drained first, the remainder drawn from the next.
	var updatedFirst, updatedSecond models.Asset
	f.db.First(&updatedFirst, "id = ?", first.ID)
	f.db.First(&updatedSecond, "id = ?", second.ID)
	assert.Equal(t, 0.0, updatedFirst.EffectiveBalance())
	assert.Equal(t, 255.0, updatedSecond.EffectiveBalance())

	rec := f.overviewRecord(t, "Kabel UTP|Belden")
	assert.Equal(t, 255.0, rec.StorageBalance)
	assert.Equal(t, 150.0, rec.TotalConsumed)
	assert.Len(t, rec.UsageDetails, 1)
	assert.Equal(t, "INST-001", rec.UsageDetails[0].DocNumber)

	t.Run("insufficient content rejected", func(t *testing.T) {
		_, err := f.assets.RecordUsage(services.RecordUsageRequest{
			Name: "Kabel UTP", Brand: "Belden",
			Qty: 1000, DocNumber: "INST-002", Kind: "installation",
		})
		assert.Error(t, err)
	})
}

func TestReservationLifecycle(t *testing.T) {
	f := setupFixture(t)
	f.seedCableModel(t)
	f.seedCableDrum(t, 305)

	availability, err := f.stocks.CheckAvailability(stock.AvailabilityRequest{
		Name: "Kabel UTP", Brand: "Belden", Qty: 1, Unit: "Roll",
	})
	assert.NoError(t, err)
	assert.Equal(t, 1.0, availability.AvailableSmart)

	reservation, err := f.stocks.CreateReservation(services.ReservationRequest{
		Name: "Kabel UTP", Brand: "Belden",
		Unit: "Roll", Qty: 1,
		DocNumber: "REQ-001", CreatedBy: "tester",
	})
	assert.NoError(t, err)

	t.Run("pending reservation blocks the next requester", func(t *testing.T) {
		availability, err := f.stocks.CheckAvailability(stock.AvailabilityRequest{
			Name: "Kabel UTP", Brand: "Belden", Qty: 1, Unit: "Roll",
		})
		assert.NoError(t, err)
		assert.Equal(t, 0.0, availability.AvailableSmart)
		assert.Equal(t, 1, availability.PhysicalCount)
		assert.Equal(t, 1, availability.ReservedCount)

		_, err = f.stocks.CreateReservation(services.ReservationRequest{
			Name: "Kabel UTP", Brand: "Belden",
			Unit: "Roll", Qty: 1,
			DocNumber: "REQ-002", CreatedBy: "tester",
		})
		assert.Error(t, err, "the last drum is already earmarked")
	})

	t.Run("release restores availability", func(t *testing.T) {
		assert.NoError(t, f.stocks.ResolveReservation(reservation.ID, models.ReservationReleased))

		availability, err := f.stocks.CheckAvailability(stock.AvailabilityRequest{
			Name: "Kabel UTP", Brand: "Belden", Qty: 1, Unit: "Roll",
		})
		assert.NoError(t, err)
		assert.Equal(t, 1.0, availability.AvailableSmart)
	})

	t.Run("resolving twice rejected", func(t *testing.T) {
		err := f.stocks.ResolveReservation(reservation.ID, models.ReservationCommitted)
		assert.Error(t, err)
	})
}

func TestThresholdOverridePassthrough(t *testing.T) {
	f := setupFixture(t)
	f.seedCableModel(t)
	f.seedCableDrum(t, 305)

	assert.Equal(t, stock.LevelLow, f.overviewRecord(t, "Kabel UTP|Belden").Level)

	// An override of zero downgrades the single drum to a plain OK.
	assert.NoError(t, f.stocks.SetThreshold("Kabel UTP|Belden", 0, "admin"))
	rec := f.overviewRecord(t, "Kabel UTP|Belden")
	assert.Equal(t, 0, rec.Threshold)
	assert.Equal(t, stock.LevelOK, rec.Level)

	// Last write wins.
	assert.NoError(t, f.stocks.SetThreshold("Kabel UTP|Belden", 4, "admin"))
	overrides, err := f.stocks.GetThresholds()
	assert.NoError(t, err)
	assert.Equal(t, map[string]int{"Kabel UTP|Belden": 4}, overrides)
	assert.Equal(t, stock.LevelLow, f.overviewRecord(t, "Kabel UTP|Belden").Level)

	t.Run("negative threshold rejected", func(t *testing.T) {
		assert.Error(t, f.stocks.SetThreshold("Kabel UTP|Belden", -1, "admin"))
	})
}

func TestAlertsFilterAndCounters(t *testing.T) {
	f := setupFixture(t)
	f.seedCableModel(t)

	_, err := f.assets.CreateModel(services.CreateModelRequest{
		Category: "Jaringan", Type: "Perangkat Aktif",
		Name: "Router ISR 1100", Brand: "Cisco",
		BulkType: "individual", UnitOfMeasure: "Unit",
	})
	assert.NoError(t, err)

	// Cable: one drum in storage -> LOW. Router: ten units -> OK.
	f.seedCableDrum(t, 305)
	for i := 0; i < 10; i++ {
		_, err := f.assets.CreateAsset(services.CreateAssetRequest{
			Name: "Router ISR 1100", Brand: "Cisco",
			PurchasePrice: decimal.NewFromInt(9800000),
			CreatedBy:     "tester",
		})
		assert.NoError(t, err)
	}

	alerts, err := f.stocks.Alerts()
	assert.NoError(t, err)
	assert.Equal(t, stock.AlertSummary{Low: 1, Out: 0}, alerts.Alerts)
	assert.Len(t, alerts.Records, 1)
	assert.Equal(t, "Kabel UTP|Belden", alerts.Records[0].Key())
}
