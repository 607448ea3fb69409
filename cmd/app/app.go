package app

import (
	"log"

	"ngoportal/internal/config"
	"ngoportal/internal/database"
	"ngoportal/internal/repository"
	"ngoportal/internal/service"
	"ngoportal/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	store, err := storage.NewStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, store)

	return db, repo, services
}
