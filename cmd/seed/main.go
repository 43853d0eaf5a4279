package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/rackline/consign-backend/internal/config"
	"github.com/rackline/consign-backend/internal/db"
	"github.com/rackline/consign-backend/internal/inventory"
	"github.com/rackline/consign-backend/internal/model"
	"github.com/rackline/consign-backend/internal/repository"
	"github.com/rackline/consign-backend/internal/service"
)

type seedItem struct {
	title     string
	category  string
	brand     string
	condition string
	gender    string
	price     float64
	seller    string
	liveDays  int // days already on shelf; 0 leaves the item pending
}

var samples = []seedItem{
	{"Denim Jacket", "Outerwear", "Levi's", "Good", "men", 45, "Ana Morales", 12},
	{"Denim Jacket", "Outerwear", "Levi's", "Good", "men", 52, "Ben Okafor", 8},
	{"Wool Overcoat", "Outerwear", "Uniqlo", "Excellent", "women", 80, "Ana Morales", 35},
	{"Silk Blouse", "Tops", "Everlane", "Good", "women", 38, "Cleo Tanaka", 31},
	{"Leather Boots", "Shoes", "Dr. Martens", "Fair", "unisex", 60, "Ben Okafor", 40},
	{"Corduroy Pants", "Bottoms", "Carhartt", "Good", "men", 34, "Cleo Tanaka", 5},
	{"Linen Dress", "Dresses", "COS", "Excellent", "women", 55, "Ana Morales", 0},
	{"Canvas Tote", "Accessories", "", "Good", "unisex", 18, "Ben Okafor", 0},
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	_ = godotenv.Load()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	gdb, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := gdb.AutoMigrate(
		&model.Item{},
		&model.ItemImage{},
		&model.AuditEntry{},
		&model.AccountEarnings{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	itemRepo := repository.NewItemRepository(gdb)
	itemSvc := service.NewItemService(itemRepo)

	now := time.Now()
	inserted := 0

	for i, s := range samples {
		item, err := itemSvc.Create(ctx, service.NewItemParams{
			Title:      s.title,
			Category:   s.category,
			Brand:      s.brand,
			Condition:  s.condition,
			Gender:     s.gender,
			Price:      s.price,
			SellerID:   fmt.Sprintf("seller-%d", i%3+1),
			SellerName: s.seller,
			ImageURLs:  []string{fmt.Sprintf("/sample-items/item-%02d.webp", i+1)},
		})
		if err != nil {
			return fmt.Errorf("create %q: %w", s.title, err)
		}

		if s.liveDays > 0 {
			// Backdate the lifecycle so shelf-discount sweeps have
			// something to chew on.
			approved := now.AddDate(0, 0, -s.liveDays-1)
			live := now.AddDate(0, 0, -s.liveDays)
			if err := inventory.Transition(item, model.StatusApproved, approved); err != nil {
				return fmt.Errorf("approve %q: %w", s.title, err)
			}
			if err := inventory.Transition(item, model.StatusLive, live); err != nil {
				return fmt.Errorf("make %q live: %w", s.title, err)
			}
			if err := itemRepo.SaveWithStatusCheck(ctx, item, model.StatusPending); err != nil {
				return fmt.Errorf("save %q: %w", s.title, err)
			}
		}
		inserted++
	}

	log.Printf("seeded %d items", inserted)
	return nil
}
