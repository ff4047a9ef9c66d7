package constants

const (
	RoleAthlete   = "athlete"
	RoleCoach     = "coach"
	RoleHeadCoach = "head_coach"
)

// Pesan error yang dipakai client apa adanya, jangan diubah sembarangan.
const (
	ErrOnlyCoachesCanUpdatePayments = "Only coaches can update payments"
	ErrBranchAccessDenied           = "Access denied for this branch."
	ErrInvalidSessionDate           = "Invalid date format. Use YYYY-MM-DD."
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	CoachRoles = []string{
		RoleCoach,
		RoleHeadCoach,
	}
)

func HasRole(role string, allowed []string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
