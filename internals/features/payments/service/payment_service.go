package service

import (
	"sort"

	dto "clubpay_backend/internals/features/payments/dto"
	model "clubpay_backend/internals/features/payments/model"
	userModel "clubpay_backend/internals/features/users/account/model"
)

// DistinctDueDates set due_date unik dari payments, terurut naik.
func DistinctDueDates(payments []model.PaymentModel) []string {
	seen := make(map[string]struct{}, len(payments))
	out := make([]string, 0)
	for _, p := range payments {
		k := p.DueDateKey()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// BuildSummary semua athlete muncul, default pending untuk setiap due_date,
// lalu ditimpa status dari payment milik athlete tsb.
func BuildSummary(athletes []userModel.BranchAthlete, payments []model.PaymentModel) dto.SummaryResponse {
	dates := DistinctDueDates(payments)

	byAthlete := make(map[int64][]model.PaymentModel)
	for _, p := range payments {
		byAthlete[p.AthleteID] = append(byAthlete[p.AthleteID], p)
	}

	records := make([]dto.SummaryRecord, 0, len(athletes))
	for _, a := range athletes {
		statuses := make(dto.StatusMap, len(dates))
		for _, d := range dates {
			statuses[d] = model.PaymentPending
		}
		for _, p := range byAthlete[a.AthleteID] {
			statuses[p.DueDateKey()] = p.Status
		}
		records = append(records, dto.SummaryRecord{
			AthleteID:   a.AthleteID,
			AthleteName: a.AthleteName,
			Statuses:    statuses,
		})
	}

	return dto.SummaryResponse{
		Records:      records,
		SessionDates: dates,
	}
}

// BuildStatusMap rows harus sudah urut due_date DESC, id DESC.
// Status pertama per due_date yang dipakai (id terbesar), sisanya dibuang.
// Kosong → satu entry pending untuk bulan berjalan.
func BuildStatusMap(rows []model.PaymentModel, currentMonthKey string) dto.StatusMap {
	out := make(dto.StatusMap, len(rows))
	for _, r := range rows {
		k := r.DueDateKey()
		if _, ok := out[k]; ok {
			continue
		}
		out[k] = r.Status
	}
	if len(out) == 0 {
		out[currentMonthKey] = model.PaymentPending
	}
	return out
}

// PendingStatusMap fallback sintetis kalau user belum punya record athlete.
func PendingStatusMap(currentMonthKey string) dto.StatusMap {
	return dto.StatusMap{currentMonthKey: model.PaymentPending}
}

// Outcome hasil upsert dari sisi bisnis.
type Outcome string

const (
	OutcomeInserted  Outcome = "inserted"
	OutcomeUpdated   Outcome = "updated"
	OutcomeUnchanged Outcome = "unchanged"
)

// OutcomeOf menentukan hasil upsert dari jumlah baris yang benar-benar ditulis DB.
func OutcomeOf(inserted, updated int64) Outcome {
	switch {
	case inserted > 0:
		return OutcomeInserted
	case updated > 0:
		return OutcomeUpdated
	default:
		return OutcomeUnchanged
	}
}

// AffectedRows hitungan ala MySQL ON DUPLICATE KEY UPDATE supaya angka sama di semua driver:
// 1 insert, 2 update, 0 tidak ada perubahan.
func AffectedRows(o Outcome) int64 {
	switch o {
	case OutcomeInserted:
		return 1
	case OutcomeUpdated:
		return 2
	default:
		return 0
	}
}
