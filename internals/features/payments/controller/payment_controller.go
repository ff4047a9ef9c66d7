package controller

import (
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	dto "clubpay_backend/internals/features/payments/dto"
	repository "clubpay_backend/internals/features/payments/repository"
	service "clubpay_backend/internals/features/payments/service"
	userRepo "clubpay_backend/internals/features/users/account/repository"
	helper "clubpay_backend/internals/helpers"
	helperAuth "clubpay_backend/internals/helpers/auth"
	"clubpay_backend/internals/helpers/dbtime"
)

type PaymentController struct {
	DB       *gorm.DB
	Log      *zap.Logger
	Validate *validator.Validate
	Now      func() time.Time
}

func NewPaymentController(db *gorm.DB, log *zap.Logger) *PaymentController {
	return &PaymentController{
		DB:       db,
		Log:      log.Named("payments"),
		Validate: validator.New(),
		Now:      time.Now,
	}
}

// db session terikat ke context request (timeout dari middleware ikut ke query)
func (h *PaymentController) db(c *fiber.Ctx) *gorm.DB {
	return h.DB.WithContext(c.UserContext())
}

/* ======================== SUMMARY ======================== */
// GET /payments/summary/:branch_id
func (h *PaymentController) Summary(c *fiber.Ctx) error {
	branchID, err := strconv.ParseInt(c.Params("branch_id"), 10, 64)
	if err != nil || branchID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "branch_id tidak valid")
	}

	user, err := helper.GetAuthUser(c)
	if err != nil {
		return err
	}
	if err := helperAuth.CanAccessBranch(user, branchID); err != nil {
		return err
	}

	db := h.db(c)
	athletes, err := userRepo.ListApprovedAthletesByBranch(db, branchID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	payments, err := repository.ListPaymentsByBranch(db, branchID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(service.BuildSummary(athletes, payments))
}

/* ========================= MARK ========================= */
// POST /payments/mark
func (h *PaymentController) Mark(c *fiber.Ctx) error {
	user, err := helper.GetAuthUser(c)
	if err != nil {
		return err
	}
	if !isCoach(user.Role) {
		return fiber.NewError(fiber.StatusForbidden, onlyCoachesMessage)
	}

	var req dto.MarkPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := h.Validate.Struct(req); err != nil {
		return err
	}
	athleteID, status := *req.AthleteID, *req.Status

	sessionDt, err := dbtime.ParseDate(*req.SessionDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, invalidDateMessage)
	}
	dueDate := dbtime.DueDateOf(sessionDt)

	log := h.Log.With(
		zap.Int64("athlete_id", athleteID),
		zap.String("session_date", dbtime.FormatDate(sessionDt)),
		zap.String("due_date", dbtime.FormatDate(dueDate)),
		zap.String("status", status),
		zap.Int64p("branch_id", user.BranchID),
	)
	log.Debug("marking payment")

	var outcome service.Outcome
	err = h.db(c).Transaction(func(tx *gorm.DB) error {
		// athlete hanya dicek untuk diagnosa, tidak ada → tetap lanjut
		athlete, err := userRepo.FindAthleteByID(tx, athleteID)
		if err != nil {
			return err
		}
		if athlete == nil {
			log.Warn("athlete not found, payment row will be orphaned")
		}

		p := newPaymentRow(athleteID, status, sessionDt, dueDate, user.BranchID)
		inserted, updated, err := repository.UpsertPayment(tx, p)
		if err != nil {
			return err
		}
		outcome = service.OutcomeOf(inserted, updated)
		return nil
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	affected := service.AffectedRows(outcome)
	service.RecordMark(outcome)
	log.Info("payment marked", zap.String("outcome", string(outcome)), zap.Int64("affected_rows", affected))

	return c.JSON(dto.MarkPaymentResponse{
		Message: "Payment status updated",
		Debug: dto.MarkPaymentDebug{
			AthleteID:    athleteID,
			DueDate:      dbtime.FormatDate(dueDate),
			Status:       status,
			AffectedRows: affected,
		},
	})
}
