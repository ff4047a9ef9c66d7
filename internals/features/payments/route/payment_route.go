// internals/features/payments/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	paymentCtl "clubpay_backend/internals/features/payments/controller"
)

// Contoh pemakaian: route.PaymentRoutes(app.Group("/payments", authMw), db, log)
// /summary dan /mark didaftarkan sebelum /:user_id/status supaya tidak tertangkap param.
func PaymentRoutes(r fiber.Router, db *gorm.DB, log *zap.Logger) {
	ctl := paymentCtl.NewPaymentController(db, log)

	r.Get("/summary/:branch_id", ctl.Summary)    // GET  /payments/summary/:branch_id
	r.Post("/mark", ctl.Mark)                    // POST /payments/mark
	r.Get("/:user_id/status", ctl.AthleteStatus) // GET  /payments/:user_id/status
}
