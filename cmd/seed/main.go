package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/config"
	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/db"
	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/model"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	gdb, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := gdb.AutoMigrate(&model.Item{}, &model.DeletedItem{}, &model.ItemType{}, &model.Category{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	canSeed, err := shouldSeed(gdb)
	if err != nil {
		return err
	}
	if !canSeed {
		log.Printf("reference data already exists; skipping seed (set FORCE_SEED=true to override)")
		return nil
	}

	types := []model.ItemType{
		{ID: 1, Name: "Electronics"},
		{ID: 2, Name: "Appliances"},
	}
	categories := []model.Category{
		{ID: 1, Name: "Phones", Prefix: "PHN", TypeID: 1},
		{ID: 2, Name: "Laptops", Prefix: "LPT", TypeID: 1},
		{ID: 3, Name: "Tablets", Prefix: "TBL", TypeID: 1},
		{ID: 4, Name: "Refrigerators", Prefix: "REF", TypeID: 2},
		{ID: 5, Name: "Washers", Prefix: "WSH", TypeID: 2},
	}

	return gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&types).Error; err != nil {
			return fmt.Errorf("seed types: %w", err)
		}
		if err := tx.Create(&categories).Error; err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		log.Printf("seeded %d types and %d categories", len(types), len(categories))
		return nil
	})
}

func shouldSeed(gdb *gorm.DB) (bool, error) {
	if strings.EqualFold(os.Getenv("FORCE_SEED"), "true") {
		if err := gdb.Where("1 = 1").Delete(&model.Category{}).Error; err != nil {
			return false, fmt.Errorf("clear categories: %w", err)
		}
		if err := gdb.Where("1 = 1").Delete(&model.ItemType{}).Error; err != nil {
			return false, fmt.Errorf("clear types: %w", err)
		}
		return true, nil
	}

	var count int64
	if err := gdb.Model(&model.Category{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count categories: %w", err)
	}
	return count == 0, nil
}
