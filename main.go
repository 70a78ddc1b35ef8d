package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"asset-stock/src/config"
	"asset-stock/src/handlers"
	"asset-stock/src/models"
	"asset-stock/src/repositories"
	"asset-stock/src/routes"
	"asset-stock/src/services"
)

func main() {
	cfg := config.Load()

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	db.AutoMigrate(
		&models.Category{},
		&models.ItemType{},
		&models.StandardItem{},
		&models.Asset{},
		&models.Reservation{},
		&models.MaterialUsage{},
		&models.ThresholdOverride{},
	)

	if cfg.SeedSampleData {
		if err := seedSampleData(db); err != nil {
			logger.Warn("failed to seed sample data", zap.Error(err))
		}
	}

	// Initialize repositories
	assetRepo := &repositories.AssetRepository{DB: db}
	catalogRepo := &repositories.CatalogRepository{DB: db}
	ledgerRepo := &repositories.LedgerRepository{DB: db}
	thresholdRepo := &repositories.ThresholdRepository{DB: db}

	// Initialize services
	stockService := &services.StockService{
		DB:         db,
		Assets:     assetRepo,
		Catalog:    catalogRepo,
		Ledger:     ledgerRepo,
		Thresholds: thresholdRepo,
		Log:        logger.Named("stock"),
	}
	assetService := &services.AssetService{
		DB:      db,
		Assets:  assetRepo,
		Catalog: catalogRepo,
		Ledger:  ledgerRepo,
		Log:     logger.Named("asset"),
	}

	// Initialize handlers
	stockHandler := &handlers.StockHandler{Service: stockService}
	assetHandler := &handlers.AssetHandler{Service: assetService}

	// Setup router dengan recovery middleware
	router := gin.Default()

	api := router.Group("/api/v1")
	routes.RegisterStockRoutes(api, stockHandler)
	routes.RegisterAssetRoutes(api, assetHandler)

	logger.Info("starting server", zap.String("port", cfg.AppPort))
	if err := router.Run(":" + cfg.AppPort); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func seedSampleData(db *gorm.DB) error {
	var modelCount int64
	db.Model(&models.StandardItem{}).Count(&modelCount)
	if modelCount > 0 {
		return nil
	}

	network := models.Category{Name: "Jaringan"}
	if err := db.FirstOrCreate(&network, "name = ?", network.Name).Error; err != nil {
		return err
	}
	cableType := models.ItemType{CategoryID: network.ID, Name: "Kabel"}
	if err := db.FirstOrCreate(&cableType, "category_id = ? AND name = ?", network.ID, cableType.Name).Error; err != nil {
		return err
	}
	deviceType := models.ItemType{CategoryID: network.ID, Name: "Perangkat Aktif"}
	if err := db.FirstOrCreate(&deviceType, "category_id = ? AND name = ?", network.ID, deviceType.Name).Error; err != nil {
		return err
	}

	meter := "Meter"
	drumCapacity := 305.0
	catalog := []models.StandardItem{
		{
			TypeID:            cableType.ID,
			Name:              "Kabel UTP",
			Brand:             "Belden",
			BulkType:          models.BulkTypeMeasurement,
			UnitOfMeasure:     "Roll",
			BaseUnitOfMeasure: &meter,
			QuantityPerUnit:   &drumCapacity,
		},
		{
			TypeID:        deviceType.ID,
			Name:          "Router ISR 1100",
			Brand:         "Cisco",
			BulkType:      models.BulkTypeIndividual,
			UnitOfMeasure: "Unit",
		},
		{
			TypeID:        deviceType.ID,
			Name:          "Konektor RJ45",
			Brand:         "AMP",
			BulkType:      models.BulkTypeCount,
			UnitOfMeasure: "Pcs",
		},
	}
	for i := range catalog {
		if err := db.Create(&catalog[i]).Error; err != nil {
			return err
		}
	}

	assets := []models.Asset{
		{
			ID: uuid.New(), Name: "Kabel UTP", Brand: "Belden",
			Category: network.Name, Type: cableType.Name,
			Status: models.StatusInStorage, InitialBalance: drumCapacity,
			PurchasePrice: decimal.NewFromInt(1500000), CreatedBy: "seed", CreatedAt: time.Now(),
		},
		{
			ID: uuid.New(), Name: "Router ISR 1100", Brand: "Cisco",
			Category: network.Name, Type: deviceType.Name,
			Status:        models.StatusInStorage,
			PurchasePrice: decimal.NewFromInt(9800000), CreatedBy: "seed", CreatedAt: time.Now(),
		},
		{
			ID: uuid.New(), Name: "Router ISR 1100", Brand: "Cisco",
			Category: network.Name, Type: deviceType.Name,
			Status:        models.StatusInUse,
			PurchasePrice: decimal.NewFromInt(9800000), CreatedBy: "seed", CreatedAt: time.Now(),
		},
	}
	for i := range assets {
		if err := db.Create(&assets[i]).Error; err != nil {
			return err
		}
	}

	return nil
}
