package main

import (
	"net/http"
	"time"

	"storefront-api/internal/auth"
	"storefront-api/internal/config"
	handlers "storefront-api/internal/controllers/http"
	"storefront-api/internal/infra"
	mmysql "storefront-api/internal/infra/mysql"
	"storefront-api/internal/infra/rabbitmq"
	"storefront-api/internal/logging"
	"storefront-api/internal/metrics"
	mysqlrepo "storefront-api/internal/repository/mysql"
	"storefront-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	logger := logging.GetSugaredLogger()
	defer logger.Sync()

	cfg, err := config.GetConfig()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	blackout, err := cfg.Blackout()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	db, err := mmysql.NewMySQL(cfg.MySQLDSN())
	if err != nil {
		logger.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	repo := mysqlrepo.NewOrderRepository(db)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		DB:           0,
		PoolSize:     100,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	productClient := infra.NewProductClient(cfg.ProductServiceURL, 2*time.Second)
	userClient := infra.NewUserClient(cfg.UserServiceURL, 2*time.Second)
	lookupClient := infra.NewLookupClient(cfg.LookupServiceURL, 2*time.Second, redisClient)

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, "order.exchange")
	if err != nil {
		logger.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	s := services.NewOrderService(repo, productClient, userClient, lookupClient, publisher, blackout, logger)
	s.SetRedisClient(redisClient)

	verifier := auth.NewVerifier(cfg.TokenSecret)
	handler := handlers.NewHandler(s, verifier, logger)
	serverMetrics := metrics.NewServerMetrics("orders")

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(serverMetrics.Middleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	handler.RegisterRoutes(r)

	logger.Infof("starting order service on %s", cfg.RunAddress)
	if err := r.Run(cfg.RunAddress); err != nil {
		logger.Fatalf("server run: %v", err)
	}
}
