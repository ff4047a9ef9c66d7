package model

import "time"

// UserModel merepresentasikan tabel users. Dikelola subsistem auth, di sini hanya dibaca.
type UserModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone        *string   `gorm:"size:30" json:"phone,omitempty"`
	PasswordHash string    `gorm:"column:password_hash;not null;default:''" json:"-"`
	Role         string    `gorm:"type:varchar(20);not null;default:'athlete'" json:"role"`
	BranchID     *int64    `gorm:"column:branch_id;index" json:"branch_id,omitempty"`
	Approved     bool      `gorm:"not null;default:false" json:"approved"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// SameBranch true kalau user terikat ke branch tsb.
func (u *UserModel) SameBranch(branchID int64) bool {
	return u.BranchID != nil && *u.BranchID == branchID
}
