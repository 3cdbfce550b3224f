package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/callmeniyu/Oastel-sub001/internal/clock"
	"github.com/callmeniyu/Oastel-sub001/internal/config"
	"github.com/callmeniyu/Oastel-sub001/internal/database"
	"github.com/callmeniyu/Oastel-sub001/internal/domain"
	"github.com/callmeniyu/Oastel-sub001/internal/inventory"
	"github.com/callmeniyu/Oastel-sub001/internal/middleware"
	"github.com/callmeniyu/Oastel-sub001/internal/modules/cart"
	"github.com/callmeniyu/Oastel-sub001/internal/modules/validation"
	"github.com/callmeniyu/Oastel-sub001/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Inventory: remote service when configured, the local database
	// otherwise. The validation engine sees the same interface either
	// way.
	var inv validation.InventoryQuerier
	if cfg.InventoryURL != "" {
		log.Println("inventory: remote at", cfg.InventoryURL)
		inv = inventory.NewClient(cfg.InventoryURL, cfg.RequestTimeout)
	} else {
		db, err := database.Connect(cfg.DatabaseDSN)
		if err != nil {
			log.Fatal(err)
		}
		if err := db.AutoMigrate(&domain.TimeSlot{}); err != nil {
			log.Fatal(err)
		}
		inv = repository.NewTimeSlotRepository(db)
	}

	var clk validation.ClockSource
	if cfg.ServerTimeURL != "" {
		clk = clock.NewHTTPSource(cfg.ServerTimeURL, cfg.RequestTimeout)
	} else {
		clk = clock.System{}
	}

	validationService := validation.NewService(inv, clk, cfg.BookingCutoff)
	validationHandler := validation.NewHandler(validationService)

	cartService := cart.NewService(cfg.BankChargeRate, cfg.TaxRate, cfg.Currency)
	cartHandler := cart.NewHandler(cartService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		validationHandler.RegisterRoutes(v1)
		cartHandler.RegisterRoutes(v1)
	}

	log.Println("listening on", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
