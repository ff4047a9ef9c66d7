package dto

/* ================== REQUESTS ================== */

// POST /payments/mark
// Pointer: "required" hanya memastikan key ada; nilai 0 / "" tetap sah.
type MarkPaymentRequest struct {
	AthleteID   *int64  `json:"athlete_id"   validate:"required"`
	SessionDate *string `json:"session_date" validate:"required"`
	Status      *string `json:"status"       validate:"required"`
}

/* ================== RESPONSES ================== */

type MarkPaymentDebug struct {
	AthleteID    int64  `json:"athlete_id"`
	DueDate      string `json:"due_date"`
	Status       string `json:"status"`
	AffectedRows int64  `json:"affected_rows"`
}

type MarkPaymentResponse struct {
	Message string           `json:"message"`
	Debug   MarkPaymentDebug `json:"debug"`
}

// StatusMap due_date (YYYY-MM-DD) → status.
type StatusMap map[string]string

type SummaryRecord struct {
	AthleteID   int64     `json:"athlete_id"`
	AthleteName string    `json:"athlete_name"`
	Statuses    StatusMap `json:"statuses"`
}

type SummaryResponse struct {
	Records      []SummaryRecord `json:"records"`
	SessionDates []string        `json:"session_dates"`
}
