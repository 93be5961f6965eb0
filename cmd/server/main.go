package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog-service/config"
	"catalog-service/internal/api"
	"catalog-service/internal/broker"
	"catalog-service/internal/redisclient"
	"catalog-service/internal/rotation"
	"catalog-service/internal/service"
	"catalog-service/internal/store"
	"catalog-service/internal/util"
	"catalog-service/internal/worker"

	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting catalog service")

	tp, err := util.InitTracer("catalog-service", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	backend, closeBackend, err := newSnapshotBackend(cfg)
	if err != nil {
		log.Fatalf("Failed to connect snapshot backend: %v", err)
	}
	defer closeBackend()
	log.Printf("Snapshot backend ready: %s", cfg.Snapshot.Backend)

	snapshots := store.New(backend)

	producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicCatalog)
	defer producer.Close()
	log.Println("Kafka producer initialized")

	eventPublisher := broker.NewEventPublisher(producer)

	carousels := rotation.NewManager(context.Background(), snapshots, cfg.Catalog.RotationInterval, logger)
	defer carousels.StopAll()

	catalogService := service.NewCatalogService(snapshots)
	adminService := service.NewAdminService(snapshots, eventPublisher, carousels)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.TopicCatalog, cfg.Kafka.ConsumerGroup)
	carouselWorker := worker.NewCarouselWorker(consumer, carousels)
	go func() {
		if err := carouselWorker.Start(workerCtx); err != nil {
			log.Printf("Carousel worker error: %v", err)
		}
	}()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	handler := api.NewHandler(catalogService, adminService, carousels)
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	workerCancel()
	carouselWorker.Stop()
	carousels.StopAll()

	log.Println("Server exited")
}

// newSnapshotBackend picks the keyed storage from config. The in-memory
// backend serves demo runs with no infrastructure at all.
func newSnapshotBackend(cfg *config.Config) (store.Backend, func(), error) {
	switch cfg.Snapshot.Backend {
	case "postgres":
		pg, err := store.NewPostgresBackend(cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		return pg, func() { pg.Close() }, nil

	case "memory":
		return store.NewMemoryBackend(), func() {}, nil

	default:
		rc, err := redisclient.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return rc, func() { rc.Close() }, nil
	}
}
