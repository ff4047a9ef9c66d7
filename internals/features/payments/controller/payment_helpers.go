package controller

import (
	"time"

	"gorm.io/datatypes"

	"clubpay_backend/internals/constants"
	model "clubpay_backend/internals/features/payments/model"
)

const (
	onlyCoachesMessage = constants.ErrOnlyCoachesCanUpdatePayments
	invalidDateMessage = constants.ErrInvalidSessionDate
)

func isCoach(role string) bool {
	return constants.HasRole(role, constants.CoachRoles)
}

func newPaymentRow(athleteID int64, status string, sessionDt, dueDate time.Time, branchID *int64) *model.PaymentModel {
	return &model.PaymentModel{
		AthleteID:        athleteID,
		SessionDate:      datatypes.Date(sessionDt),
		DueDate:          datatypes.Date(dueDate),
		BranchID:         branchID,
		Status:           status,
		ConfirmedByCoach: true,
	}
}
