package model

// AthleteModel: satu baris per user ber-role athlete yang sudah di-approve.
type AthleteModel struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64 `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
}

func (AthleteModel) TableName() string {
	return "athletes"
}

// AthleteRecord hasil join athletes + users.
type AthleteRecord struct {
	AthleteID int64  `gorm:"column:athlete_id" json:"athlete_id"`
	Name      string `gorm:"column:name" json:"name"`
	Email     string `gorm:"column:email" json:"email"`
	BranchID  *int64 `gorm:"column:branch_id" json:"branch_id,omitempty"`
}

// BranchAthlete baris ringkas untuk summary per branch.
type BranchAthlete struct {
	AthleteID   int64  `gorm:"column:athlete_id"`
	AthleteName string `gorm:"column:athlete_name"`
}
