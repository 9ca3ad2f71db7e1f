package main

import (
	"log"

	"github.com/DataLineage-25-26J-512/lineage-backend/config"
	"github.com/DataLineage-25-26J-512/lineage-backend/internal/bootstrap"
	"github.com/DataLineage-25-26J-512/lineage-backend/internal/lineage/service"
)

const serviceName = "lineage-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	// the graph is built once, in full, before the first request is served
	analyzer, err := service.New(cfg.Lineage.EventsDir)
	if err != nil {
		log.Fatalf("load lineage graph: %v", err)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Analyzer:    analyzer,
		MaxDepth:    cfg.Lineage.MaxDepth,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	log.Fatal(r.Run(":" + cfg.Server.Port))
}
