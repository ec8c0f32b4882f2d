package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	apiserver "github.com/kogocampus/course-scraper/internal/api_server"
	"github.com/kogocampus/course-scraper/internal/config"
	"github.com/kogocampus/course-scraper/internal/flower"
	"github.com/kogocampus/course-scraper/internal/storage"
	"github.com/kogocampus/course-scraper/internal/store"
	"github.com/kogocampus/course-scraper/pkg/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the course scraper api",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return err
		}

		logger := log.InitLog(log.ParseLevel(cfg.Service.LogLevel))
		defer func() { _ = logger.Sync() }()
		undo := zap.ReplaceGlobals(logger)
		defer undo()

		zap.S().Info("Starting API service")
		defer zap.S().Info("API service stopped")

		zap.S().Info("Initializing key-value store")
		redisClient, err := store.InitRedis(cfg)
		if err != nil {
			zap.S().Fatalf("initializing key-value store: %v", err)
		}

		dataStore := store.NewStore(redisClient)
		defer dataStore.Close()

		blobStore, err := storage.NewMinioBlobStore(
			storage.WithEndpoint(cfg.S3.Endpoint),
			storage.WithBucket(cfg.S3.Bucket),
			storage.WithAccessKey(cfg.S3.AccessKey),
			storage.WithSecretKey(cfg.S3.SecretKey),
			storage.WithRegion(cfg.S3.Region),
			storage.WithSSL(cfg.S3.UseSSL),
		)
		if err != nil {
			zap.S().Fatalf("initializing blob store: %v", err)
		}

		flowerClient := flower.NewClient(cfg.Flower.URL, cfg.Flower.Username, cfg.Flower.Password)

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
		defer cancel()

		go func() {
			defer cancel()
			listener, err := newListener(cfg.Service.Address)
			if err != nil {
				zap.S().Fatalf("creating listener: %s", err)
			}

			server := apiserver.New(cfg, dataStore, blobStore, flowerClient, listener)
			if err := server.Run(ctx); err != nil {
				zap.S().Fatalf("Error running server: %s", err)
			}
		}()

		go func() {
			defer cancel()
			listener, err := newListener(cfg.Service.MetricsAddress)
			if err != nil {
				zap.S().Fatalf("creating metrics listener: %s", err)
			}

			metricsServer := apiserver.NewMetricServer(cfg.Service.MetricsAddress, listener)
			if err := metricsServer.Run(ctx); err != nil {
				zap.S().Fatalf("Error running metrics server: %s", err)
			}
		}()

		<-ctx.Done()
		return nil
	},
}

func newListener(address string) (net.Listener, error) {
	if address == "" {
		address = "localhost:0"
	}
	return net.Listen("tcp", address)
}
