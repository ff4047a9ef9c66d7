package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	repository "clubpay_backend/internals/features/payments/repository"
	service "clubpay_backend/internals/features/payments/service"
	userRepo "clubpay_backend/internals/features/users/account/repository"
	helper "clubpay_backend/internals/helpers"
	"clubpay_backend/internals/helpers/dbtime"
)

/* ===================== ATHLETE STATUS ===================== */
// GET /payments/:user_id/status
func (h *PaymentController) AthleteStatus(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("user_id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "user_id tidak valid")
	}
	if _, err := helper.GetAuthUser(c); err != nil {
		return err
	}

	currentMonth := dbtime.CurrentMonthKey(h.Now())
	log := h.Log.With(zap.Int64("user_id", userID))
	db := h.db(c)

	athlete, err := userRepo.FindAthleteByUserID(db, userID)
	if err != nil {
		return statusLookupFailed(err)
	}
	if athlete == nil {
		log.Debug("no athlete record, returning pending for current month", zap.String("due_date", currentMonth))
		service.RecordStatusFallback("no_athlete")
		return c.JSON(service.PendingStatusMap(currentMonth))
	}

	rows, err := repository.ListPaymentsByAthlete(db, athlete.AthleteID)
	if err != nil {
		return statusLookupFailed(err)
	}
	log.Debug("payment rows loaded", zap.Int64("athlete_id", athlete.AthleteID), zap.Int("rows", len(rows)))
	if len(rows) == 0 {
		service.RecordStatusFallback("no_payments")
	}

	return c.JSON(service.BuildStatusMap(rows, currentMonth))
}

func statusLookupFailed(err error) error {
	return fiber.NewError(fiber.StatusInternalServerError, "Failed to get payment status: "+err.Error())
}
