package main

import (
	"os"

	"foodfleet/config"
	httpapi "foodfleet/internal/api/http"
	"foodfleet/internal/logger"
	"foodfleet/internal/service"
	"foodfleet/internal/storage"

	log "github.com/sirupsen/logrus"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	if err := logger.Setup(cfg.Logging.Level, cfg.Logging.FilePath); err != nil {
		log.Fatal(err)
	}

	db := config.MustInitPostgres(cfg)
	defer db.Close()
	repo := storage.NewPostgresRepository(db)

	var cache service.CatalogCache
	if rdb := config.MustInitRedis(cfg); rdb != nil {
		defer rdb.Close()
		cache = storage.NewRedisCache(rdb, cfg.CatalogTTL())
	}

	var publisher service.OrderPublisher
	if writer := config.NewKafkaWriter(cfg); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	catalogSvc := service.NewCatalogService(repo, cache)
	orderSvc := service.NewOrderService(repo, publisher, service.DefaultQRGenerator{BaseURL: cfg.Server.QRBaseURL})
	inquirySvc := service.NewInquiryService(repo)

	handler := httpapi.NewHandler(catalogSvc, orderSvc, inquirySvc)
	httpapi.StartServer(":"+cfg.Server.Port, httpapi.NewRouter(handler))
}
