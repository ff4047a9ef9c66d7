// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"clubpay_backend/internals/configs"
	paymentRoute "clubpay_backend/internals/features/payments/route"
	authMiddleware "clubpay_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config, log *zap.Logger) {
	startTime = time.Now()

	log.Info("Setting up BaseRoutes...")
	BaseRoutes(app, db, cfg)

	// ===================== PAYMENTS (auth wajib) =====================
	log.Info("Mounting Payment routes...")
	payments := app.Group("/payments",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			DB:                  db,
			Log:                 log.Named("auth"),
			Secret:              cfg.JWTSecret,
			Algorithm:           cfg.JWTAlgorithm,
			AllowCookieFallback: true,
		}),
	)
	paymentRoute.PaymentRoutes(payments, db, log)
}
