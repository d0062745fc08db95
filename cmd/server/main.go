package main

import (
	"log"

	"github.com/villedemo/crisismap-backend/internal/api"
	"github.com/villedemo/crisismap-backend/internal/config"
	"github.com/villedemo/crisismap-backend/internal/database"
	"github.com/villedemo/crisismap-backend/internal/handler"
	"github.com/villedemo/crisismap-backend/internal/repository"
	"github.com/villedemo/crisismap-backend/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	drawingRepo := repository.NewDrawingRepository(db)
	crisisRepo := repository.NewCrisisRepository(db)
	siteRepo := repository.NewSiteRepository(db)

	mapService := service.NewMapService(drawingRepo, crisisRepo, siteRepo)
	siteService := service.NewSiteService(siteRepo, crisisRepo, cfg.MapCenter)

	router := api.SetupRouter(cfg,
		handler.NewMapHandler(mapService),
		handler.NewSiteHandler(siteService),
	)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
