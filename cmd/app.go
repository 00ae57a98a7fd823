package main

import (
	"context"
	"fmt"
	"log"

	"nutritrack/config"
	"nutritrack/services"
	"nutritrack/store"

	"gorm.io/gorm"
)

// storage is the persistence backing chosen by DB_DRIVER.
type storage interface {
	services.MealStore
	services.UserStore
	services.AlertStore
}

// openStorage returns the store and, for sql drivers, the open database.
func openStorage(cfg config.Config) (storage, *gorm.DB, error) {
	if cfg.DBDriver == "memory" {
		log.Println("DB_DRIVER=memory: data is kept in process and lost on exit")
		return store.NewMemoryStore(), nil, nil
	}
	db, err := config.InitDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	return store.NewGormStore(db), db, nil
}

// newLookup picks the nutrient source. The table source needs a database.
func newLookup(cfg config.Config, db *gorm.DB) (services.NutrientLookup, error) {
	switch cfg.NutrientSource {
	case "edamam":
		if cfg.EdamamAppID == "" || cfg.EdamamAppKey == "" {
			return nil, fmt.Errorf("NUTRIENT_SOURCE=edamam needs EDAMAM_APP_ID and EDAMAM_APP_KEY")
		}
		return services.NewEdamamService(cfg.EdamamAppID, cfg.EdamamAppKey), nil
	case "table", "":
		if db == nil {
			return nil, fmt.Errorf("NUTRIENT_SOURCE=table needs a database; set DB_DRIVER to postgres or sqlite")
		}
		return services.NewNutrientTableService(db), nil
	default:
		return nil, fmt.Errorf("unsupported NUTRIENT_SOURCE %q", cfg.NutrientSource)
	}
}

// newPusher returns nil when SNS is not configured or cannot be set up.
func newPusher(ctx context.Context, cfg config.Config) services.Pusher {
	if cfg.SNSTopicARN == "" {
		return nil
	}
	ps, err := services.NewPushService(ctx, cfg.AWSRegion, cfg.SNSTopicARN)
	if err != nil {
		log.Printf("push disabled: %v", err)
		return nil
	}
	return ps
}
