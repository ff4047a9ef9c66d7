package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	model "clubpay_backend/internals/features/payments/model"
	userModel "clubpay_backend/internals/features/users/account/model"
)

func date(s string) datatypes.Date {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return datatypes.Date(t)
}

func payment(id, athleteID int64, due, status string) model.PaymentModel {
	return model.PaymentModel{ID: id, AthleteID: athleteID, DueDate: date(due), SessionDate: date(due), Status: status}
}

func TestDistinctDueDatesSortedAndUnique(t *testing.T) {
	payments := []model.PaymentModel{
		payment(1, 1, "2024-03-01", "paid"),
		payment(2, 2, "2024-01-01", "paid"),
		payment(3, 1, "2024-01-01", "pending"),
		payment(4, 3, "2024-02-01", "late"),
	}
	assert.Equal(t, []string{"2024-01-01", "2024-02-01", "2024-03-01"}, DistinctDueDates(payments))
	assert.Equal(t, []string{}, DistinctDueDates(nil))
}

func TestBuildSummary(t *testing.T) {
	athletes := []userModel.BranchAthlete{
		{AthleteID: 1, AthleteName: "Ana"},
		{AthleteID: 2, AthleteName: "Budi"},
		{AthleteID: 3, AthleteName: "Citra"},
	}
	payments := []model.PaymentModel{
		payment(10, 1, "2024-01-01", "paid"),
		payment(11, 1, "2024-02-01", "pending"),
		payment(12, 2, "2024-02-01", "paid"),
		// athlete yang tidak ada di daftar tetap menyumbang due_date
		payment(13, 99, "2024-03-01", "paid"),
	}

	got := BuildSummary(athletes, payments)

	require.Len(t, got.Records, 3)
	assert.Equal(t, []string{"2024-01-01", "2024-02-01", "2024-03-01"}, got.SessionDates)

	assert.Equal(t, "Ana", got.Records[0].AthleteName)
	assert.Equal(t, "paid", got.Records[0].Statuses["2024-01-01"])
	assert.Equal(t, "pending", got.Records[0].Statuses["2024-02-01"])
	assert.Equal(t, "pending", got.Records[0].Statuses["2024-03-01"])

	assert.Equal(t, "pending", got.Records[1].Statuses["2024-01-01"])
	assert.Equal(t, "paid", got.Records[1].Statuses["2024-02-01"])

	// athlete tanpa payment: semua pending untuk setiap session date
	require.Len(t, got.Records[2].Statuses, len(got.SessionDates))
	for _, d := range got.SessionDates {
		assert.Equal(t, model.PaymentPending, got.Records[2].Statuses[d])
	}
}

func TestBuildSummaryEmptyBranch(t *testing.T) {
	got := BuildSummary(nil, nil)
	assert.NotNil(t, got.Records)
	assert.NotNil(t, got.SessionDates)
	assert.Empty(t, got.Records)
	assert.Empty(t, got.SessionDates)
}

func TestBuildStatusMapKeepsHighestIDPerDueDate(t *testing.T) {
	// urutan sesuai query: due_date DESC, id DESC
	rows := []model.PaymentModel{
		payment(8, 1, "2024-02-01", "paid"),
		payment(7, 1, "2024-01-01", "paid"),
		payment(3, 1, "2024-01-01", "pending"),
	}
	got := BuildStatusMap(rows, "2026-10-01")
	assert.Equal(t, map[string]string{"2024-02-01": "paid", "2024-01-01": "paid"}, map[string]string(got))
}

func TestBuildStatusMapEmptyFallsBackToCurrentMonth(t *testing.T) {
	got := BuildStatusMap(nil, "2026-10-01")
	assert.Equal(t, map[string]string{"2026-10-01": "pending"}, map[string]string(got))
	assert.Equal(t, got, PendingStatusMap("2026-10-01"))
}

func TestOutcomeOfAndAffectedRows(t *testing.T) {
	assert.Equal(t, OutcomeInserted, OutcomeOf(1, 0))
	assert.Equal(t, OutcomeUpdated, OutcomeOf(0, 1))
	assert.Equal(t, OutcomeUnchanged, OutcomeOf(0, 0))

	assert.EqualValues(t, 1, AffectedRows(OutcomeInserted))
	assert.EqualValues(t, 2, AffectedRows(OutcomeUpdated))
	assert.EqualValues(t, 0, AffectedRows(OutcomeUnchanged))
}
