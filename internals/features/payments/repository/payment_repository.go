package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "clubpay_backend/internals/features/payments/model"
)

func ListPaymentsByBranch(db *gorm.DB, branchID int64) ([]model.PaymentModel, error) {
	rows := make([]model.PaymentModel, 0)
	err := db.Where("branch_id = ?", branchID).Find(&rows).Error
	return rows, err
}

// ListPaymentsByAthlete urut due_date DESC, id DESC (yang terbaru di depan).
func ListPaymentsByAthlete(db *gorm.DB, athleteID int64) ([]model.PaymentModel, error) {
	rows := make([]model.PaymentModel, 0)
	err := db.Where("athlete_id = ?", athleteID).
		Order("due_date DESC").
		Order("id DESC").
		Find(&rows).Error
	return rows, err
}

// InsertPaymentIfAbsent insert baris baru; kalau (athlete_id, due_date) sudah ada tidak menyentuh apa pun.
// Return 1 kalau baris baru dibuat, 0 kalau konflik.
func InsertPaymentIfAbsent(db *gorm.DB, p *model.PaymentModel) (int64, error) {
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "athlete_id"}, {Name: "due_date"}},
		DoNothing: true,
	}).Create(p)
	return res.RowsAffected, res.Error
}

// ConfirmPaymentStatus timpa status + confirmed_by_coach pada baris yang sudah ada.
// Baris yang nilainya sudah sama tidak dihitung (return 0).
func ConfirmPaymentStatus(db *gorm.DB, p *model.PaymentModel) (int64, error) {
	res := db.Model(&model.PaymentModel{}).
		Where("athlete_id = ? AND due_date = ?", p.AthleteID, p.DueDate).
		Where("status <> ? OR confirmed_by_coach <> ?", p.Status, p.ConfirmedByCoach).
		Updates(map[string]interface{}{
			"status":             p.Status,
			"confirmed_by_coach": p.ConfirmedByCoach,
		})
	return res.RowsAffected, res.Error
}

// UpsertPayment insert-or-update dengan key (athlete_id, due_date); session_date baris lama dipertahankan.
// Jumlah baris dari masing-masing statement dikembalikan apa adanya, dipakai untuk menentukan outcome.
// Harus dipanggil di dalam transaksi.
func UpsertPayment(db *gorm.DB, p *model.PaymentModel) (inserted, updated int64, err error) {
	inserted, err = InsertPaymentIfAbsent(db, p)
	if err != nil || inserted > 0 {
		return inserted, 0, err
	}
	updated, err = ConfirmPaymentStatus(db, p)
	return 0, updated, err
}
