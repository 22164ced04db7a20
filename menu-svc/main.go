package main

import (
	"context"
	"log"

	"menuboard/config"
	httpapi "menuboard/menu-svc/internal/api/http"
	"menuboard/menu-svc/internal/repository"
	"menuboard/menu-svc/internal/service"
	"menuboard/menu-svc/internal/storage"
)

func main() {
	cfg := config.Load()

	store, closeStore := openStore(cfg)
	defer closeStore()

	repo, err := repository.Open(context.Background(), store)
	if err != nil {
		log.Fatal("Failed to load catalog:", err)
	}

	var publisher service.EventPublisher
	if writer := config.NewKafkaWriter(cfg); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	menuSvc := service.NewMenuService(repo, service.DefaultQRGenerator{}, publisher, cfg.PublicBaseURL)
	handler := httpapi.NewHandler(menuSvc)

	httpapi.StartServer(":"+cfg.Port, httpapi.NewRouter(handler))
}

func openStore(cfg config.Config) (storage.KeyValueStore, func()) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		db := config.MustInitPostgres(cfg)
		store := storage.NewPostgresStore(db)
		if err := store.EnsureSchema(); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}
		return store, func() { db.Close() }
	case config.DriverRedis:
		client := config.MustInitRedis(cfg)
		return storage.NewRedisStore(client, cfg.RedisKeyPrefix), func() { client.Close() }
	case config.DriverMemory:
		log.Printf("[menu-svc] using in-memory storage; catalog is lost on restart")
		return storage.NewMemoryStore(), func() {}
	default:
		log.Fatalf("Unknown STORAGE_DRIVER %q", cfg.StorageDriver)
		return nil, nil
	}
}
