package model

import (
	"time"

	"gorm.io/datatypes"

	"clubpay_backend/internals/helpers/dbtime"
)

type PaymentStatus = string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// PaymentModel: maksimal satu baris per (athlete_id, due_date), dijaga unique index.
// Tidak ada FK ke athletes; baris yatim diperbolehkan.
type PaymentModel struct {
	ID               int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	AthleteID        int64          `gorm:"column:athlete_id;not null;uniqueIndex:uq_payments_athlete_due,priority:1" json:"athlete_id"`
	SessionDate      datatypes.Date `gorm:"column:session_date;not null" json:"session_date"`
	DueDate          datatypes.Date `gorm:"column:due_date;not null;uniqueIndex:uq_payments_athlete_due,priority:2;index:idx_payments_due" json:"due_date"`
	Status           PaymentStatus  `gorm:"type:text;not null" json:"status"`
	BranchID         *int64         `gorm:"column:branch_id;index:idx_payments_branch" json:"branch_id,omitempty"`
	ConfirmedByCoach bool           `gorm:"column:confirmed_by_coach;not null;default:false" json:"confirmed_by_coach"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

// DueDateKey due_date dalam format YYYY-MM-DD, dipakai sebagai key map status.
func (p PaymentModel) DueDateKey() string {
	return time.Time(p.DueDate).Format(dbtime.DateLayout)
}
