// Package testutil menyiapkan DB sqlite in-memory + data dummy untuk test.
package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	paymentModel "clubpay_backend/internals/features/payments/model"
	userModel "clubpay_backend/internals/features/users/account/model"
)

// NewDB satu koneksi saja: tiap koneksi :memory: punya database sendiri.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&userModel.AthleteModel{},
		&paymentModel.PaymentModel{},
	))
	return db
}

func Int64(v int64) *int64 { return &v }

func CreateUser(t testing.TB, db *gorm.DB, id int64, name, role string, branchID *int64, approved bool) *userModel.UserModel {
	t.Helper()
	u := &userModel.UserModel{
		ID:       id,
		Name:     name,
		Email:    name + "@club.test",
		Role:     role,
		BranchID: branchID,
		Approved: approved,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func CreateAthlete(t testing.TB, db *gorm.DB, id, userID int64) *userModel.AthleteModel {
	t.Helper()
	a := &userModel.AthleteModel{ID: id, UserID: userID}
	require.NoError(t, db.Create(a).Error)
	return a
}

func Date(t testing.TB, s string) datatypes.Date {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return datatypes.Date(d)
}

func CreatePayment(t testing.TB, db *gorm.DB, id, athleteID int64, due, status string, branchID *int64) *paymentModel.PaymentModel {
	t.Helper()
	p := &paymentModel.PaymentModel{
		ID:          id,
		AthleteID:   athleteID,
		SessionDate: Date(t, due),
		DueDate:     Date(t, due),
		Status:      status,
		BranchID:    branchID,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func CountPayments(t testing.TB, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&paymentModel.PaymentModel{}).Count(&n).Error)
	return n
}
