package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	redisclient "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	mongoadapter "github.com/hotelops/booking-ledger/internal/adapters/mongo"
	"github.com/hotelops/booking-ledger/internal/adapters/rabbit"
	redisadapter "github.com/hotelops/booking-ledger/internal/adapters/redis"
	"github.com/hotelops/booking-ledger/internal/audit"
	"github.com/hotelops/booking-ledger/internal/config"
	"github.com/hotelops/booking-ledger/internal/domain"
	httphandler "github.com/hotelops/booking-ledger/internal/http"
	"github.com/hotelops/booking-ledger/internal/idempotency"
	"github.com/hotelops/booking-ledger/internal/observability"
	"github.com/hotelops/booking-ledger/internal/rateLimit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	shutdownOtel, err := observability.SetupOTel(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to setup otel: %v", err)
	}
	defer shutdownOtel()

	logger := observability.NewLogger()

	var recorder audit.Recorder
	if cfg.MongoURI != "" {
		mongoClient, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatalf("failed to connect to mongo: %v", err)
		}
		defer mongoClient.Disconnect(context.Background())
		recorder = mongoadapter.NewAuditSink(mongoClient.Database("hotel"), logger)
	} else {
		fileRecorder, err := audit.NewFileRecorder(cfg.AuditLogPath)
		if err != nil {
			log.Fatalf("failed to open audit log: %v", err)
		}
		defer fileRecorder.Close()
		recorder = fileRecorder
	}

	ledger := domain.NewLedger(cfg.HotelName, domain.WithAuditRecorder(recorder))

	var redisCache *redisadapter.Cache
	var redisIdemp *redisadapter.Idempotency
	if cfg.RedisAddr != "" {
		redisClient := redisclient.NewClient(&redisclient.Options{Addr: cfg.RedisAddr})
		redisCache = redisadapter.NewCache(redisClient)
		redisIdemp = redisadapter.NewIdempotency(redisClient)
	}
	idemp := idempotency.New(redisIdemp, time.Hour)
	rl := rateLimit.NewRateLimiter(redisCache)

	var rabbitPub *rabbit.Publisher
	if cfg.RabbitURL != "" {
		rabbitConn, err := amqp.Dial(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to rabbitmq: %v", err)
		}
		defer rabbitConn.Close()
		rabbitPub, err = rabbit.NewPublisher(rabbitConn)
		if err != nil {
			log.Fatalf("failed to create publisher: %v", err)
		}
	}

	handlers := httphandler.NewHandlers(cfg, ledger, idemp, rabbitPub, logger)
	r := httphandler.SetupRouter(handlers, logger, rl, idemp)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	g, gctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
		case <-gctx.Done():
		}
		logger.Info("Shutdown Server ...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server error: %v", err)
	}
	logger.Info("Server exiting")
}
