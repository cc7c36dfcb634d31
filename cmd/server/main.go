package main

import (
	"context"
	"log"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/birthday-onchain/boc-api/internal/boc"
	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/config"
	"github.com/birthday-onchain/boc-api/internal/handler"
	"github.com/birthday-onchain/boc-api/internal/middleware"
	"github.com/birthday-onchain/boc-api/internal/model"
	"github.com/birthday-onchain/boc-api/internal/repository"
	"github.com/birthday-onchain/boc-api/internal/service"
	"github.com/birthday-onchain/boc-api/internal/ws"
	"github.com/birthday-onchain/boc-api/migrations"
	"github.com/birthday-onchain/boc-api/pkg/auth"
	"github.com/birthday-onchain/boc-api/pkg/notification"
	"github.com/birthday-onchain/boc-api/pkg/storage"
)

// @title           Birthday On-Chain API
// @version         1.0
// @description     Birthday social platform with an upgradeable selector-routed core, live event feed over WebSocket and Redis Pub/Sub.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@boc.local

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      api.localhost
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// ==================== Load Config ====================
	cfg := config.Load()
	log.Printf("🚀 Starting Birthday On-Chain API Server [env=%s]", cfg.App.Env)

	// ==================== Database (PostgreSQL) ====================
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.App.Env == "production" {
		gormLogger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	log.Println("✅ Connected to PostgreSQL")

	// ==================== Run Migrations ====================
	if err := migrations.Run(cfg.DB.URL()); err != nil {
		log.Printf("⚠️  Migration warning: %v", err)
		log.Println("📦 Falling back to GORM AutoMigrate...")
		if err := db.AutoMigrate(
			&model.EventRecord{},
			&model.Device{},
		); err != nil {
			log.Fatalf("❌ Failed to migrate database: %v", err)
		}
	}
	log.Println("✅ Database migrated successfully")

	// ==================== Redis ====================
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	log.Println("✅ Connected to Redis")

	// ==================== Platform Deployment ====================
	chainCfg := boc.Config{FeePercent: uint8(cfg.Chain.FeePercent)}
	if cfg.Chain.Deployer != "" {
		deployer, err := chain.ParseAddress(cfg.Chain.Deployer)
		if err != nil {
			log.Fatalf("❌ Invalid CHAIN_DEPLOYER: %v", err)
		}
		chainCfg.Deployer = deployer
	}
	if cfg.Chain.InitialSupply != "" {
		supply, ok := new(big.Int).SetString(cfg.Chain.InitialSupply, 10)
		if !ok {
			log.Fatalf("❌ Invalid CHAIN_INITIAL_SUPPLY: %q", cfg.Chain.InitialSupply)
		}
		chainCfg.InitialSupply = supply
	}

	bocChain, err := boc.Deploy(chainCfg)
	if err != nil {
		log.Fatalf("❌ Failed to deploy platform: %v", err)
	}
	log.Printf("💎 Platform deployed: proxy=%s token=%s owner=%s",
		bocChain.Diamond.Address(), bocChain.Token.Address(), bocChain.Diamond.Owner())

	// ==================== Initialize Layers ====================
	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Repositories
	eventRepo := repository.NewEventRepository(db)
	deviceRepo := repository.NewDeviceRepository(db)

	// WebSocket Hub (with Redis Pub/Sub for horizontal scaling)
	hub := ws.NewHub(rdb)

	hubCtx, hubCancel := context.WithCancel(context.Background())
	defer hubCancel()
	go hub.Run(hubCtx)

	// Firebase Cloud Messaging (optional)
	pushService, err := notification.NewNotificationService(cfg.Firebase.CredentialsFile, deviceRepo)
	if err != nil {
		log.Printf("⚠️  FCM not available: %v (push notifications disabled)", err)
	}
	if pushService != nil {
		log.Println("✅ FCM configured")
	}

	// MinIO Storage
	minioStorage, err := storage.NewMinIO(storage.Config{
		Endpoint:  cfg.MinIO.Endpoint,
		PublicURL: cfg.MinIO.PublicURL,
		AccessKey: cfg.MinIO.AccessKey,
		SecretKey: cfg.MinIO.SecretKey,
		Bucket:    cfg.MinIO.Bucket,
		UseSSL:    cfg.MinIO.UseSSL,
	})
	if err != nil {
		log.Printf("⚠️  MinIO not available: %v (photo upload disabled)", err)
	}
	if minioStorage != nil {
		log.Println("✅ Connected to MinIO")
	}

	// Service
	bocService := service.NewBOCService(bocChain, eventRepo, hub, pushService)

	// Handlers
	authHandler := handler.NewAuthHandler(jwtManager, rdb, cfg.JWT.Expiry)
	userHandler := handler.NewUserHandler(bocService)
	birthdayHandler := handler.NewBirthdayHandler(bocService)
	activityHandler := handler.NewActivityHandler(bocService)
	subscribeHandler := handler.NewSubscribeHandler(bocService)
	tokenHandler := handler.NewTokenHandler(bocService)
	adminHandler := handler.NewAdminHandler(bocService)
	eventHandler := handler.NewEventHandler(eventRepo)
	deviceHandler := handler.NewDeviceHandler(deviceRepo)
	uploadHandler := handler.NewUploadHandler(minioStorage)
	wsHandler := handler.NewWSHandler(hub, jwtManager)

	// ==================== Gin Router ====================
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Serve swagger.json at /docs/swagger.json to avoid conflict with /swagger/* wildcard
	router.StaticFile("/docs/swagger.json", "./docs/swagger.json")

	url := ginSwagger.URL("/docs/swagger.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url))

	// Global middleware
	router.Use(middleware.CORSMiddleware(cfg.CORS.Origins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "boc-api",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// ==================== API Routes ====================
	api := router.Group("/api/v1")
	{
		// Auth routes (public)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/session", authHandler.Session)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtManager, rdb))
		{
			// Auth
			protected.POST("/auth/logout", authHandler.Logout)

			// Users
			protected.POST("/users", userHandler.Create)
			protected.PUT("/users", userHandler.Update)
			protected.GET("/users", userHandler.GetAll)
			protected.GET("/users/:address", userHandler.Get)
			protected.GET("/users/:address/messages", userHandler.Messages)
			protected.GET("/users/:address/notifications", userHandler.Notifications)
			protected.GET("/users/:address/gifts", userHandler.Gifts)
			protected.GET("/users/:address/birthdays", userHandler.Birthdays)
			protected.GET("/users/:address/goal", userHandler.Goal)
			protected.GET("/users/:address/subscription", userHandler.Subscription)
			protected.GET("/users/:address/balance", userHandler.Balance)
			protected.GET("/users/:address/token-balance", userHandler.TokenBalance)
			protected.GET("/users/:address/complete", userHandler.Complete)

			// Birthdays and goals
			protected.POST("/birthdays", birthdayHandler.Create)
			protected.POST("/birthdays/timeline", birthdayHandler.CreateTimeline)
			protected.POST("/birthdays/:id/goal", birthdayHandler.CreateGoal)
			protected.PUT("/birthdays/:id/goal", birthdayHandler.UpdateGoal)
			protected.POST("/withdraw/ether", birthdayHandler.WithdrawEther)
			protected.POST("/withdraw/token", birthdayHandler.WithdrawToken)

			// Activities
			protected.POST("/activities/messages", activityHandler.SendMessage)
			protected.POST("/activities/gifts/ether", activityHandler.SendEtherGift)
			protected.POST("/activities/gifts/token", activityHandler.SendTokenGift)

			// Subscriptions
			protected.GET("/subscriptions", subscribeHandler.GetSubscribed)
			protected.POST("/subscriptions/ether", subscribeHandler.SubscribeEther)
			protected.POST("/subscriptions/token", subscribeHandler.SubscribeToken)

			// Token
			protected.GET("/token", tokenHandler.Info)
			protected.GET("/token/balance", tokenHandler.Balance)
			protected.GET("/token/allowance", tokenHandler.Allowance)
			protected.POST("/token/approve", tokenHandler.Approve)

			// Events
			protected.GET("/events", eventHandler.Recent)
			protected.GET("/events/subject/:address", eventHandler.BySubject)
			protected.GET("/events/name/:name", eventHandler.ByName)
			protected.GET("/events/tx/:id", eventHandler.ByTx)

			// Devices
			protected.POST("/devices", deviceHandler.Register)
			protected.DELETE("/devices/:token", deviceHandler.Remove)

			// Upload
			protected.POST("/upload/photo", uploadHandler.UploadPhoto)

			// Admin (ownership enforced inside the router)
			protected.GET("/admin/routes", adminHandler.Routes)
			protected.GET("/admin/owner", adminHandler.Owner)
			protected.GET("/admin/balances", adminHandler.Balances)
			protected.POST("/admin/withdraw", adminHandler.Withdraw)
			protected.POST("/admin/ownership", adminHandler.TransferOwnership)
		}
	}

	// WebSocket endpoint (auth via query parameter)
	router.GET("/ws", wsHandler.HandleWebSocket)

	// ==================== Start Server ====================
	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	log.Printf("🌐 Birthday On-Chain API running on http://0.0.0.0:%s", cfg.App.Port)
	log.Printf("📋 API docs: http://0.0.0.0:%s/swagger/index.html", cfg.App.Port)
	log.Printf("🔌 WebSocket: ws://0.0.0.0:%s/ws?token=<jwt>", cfg.App.Port)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	// Give ongoing requests 5 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	hubCancel()
	log.Println("✅ Server exited gracefully")
}
