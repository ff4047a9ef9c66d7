package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"clubpay_backend/internals/configs"
	database "clubpay_backend/internals/databases"
	helper "clubpay_backend/internals/helpers"
	middlewares "clubpay_backend/internals/middlewares"
	routes "clubpay_backend/internals/route"
)

func main() {
	dotenvErr := configs.LoadDotenv()
	cfg := configs.Load()

	log, err := configs.NewLogger(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if dotenvErr != nil {
		log.Info("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
	} else {
		log.Info("✅ .env file berhasil dimuat!")
	}
	cfg.Report(log)

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ErrorHandler:          helper.ErrorHandler(log),
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	middlewares.SetupMiddlewares(app, cfg, log)

	// 🔌 DB connect + pool
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		log.Fatal("❌ Gagal konek DB", zap.Error(err))
	}
	database.TunePool(db, log)

	routes.SetupRoutes(app, db, cfg, log)

	// Start server non-blocking
	go func() {
		log.Info("✅ Listening", zap.String("port", cfg.Port))
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if err := database.Close(db); err != nil {
		log.Warn("close db", zap.Error(err))
	}
}
