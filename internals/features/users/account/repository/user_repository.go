package repository

import (
	"errors"

	"gorm.io/gorm"

	"clubpay_backend/internals/constants"
	userModel "clubpay_backend/internals/features/users/account/model"
)

/* ====================== USER ====================== */

func FindUserByID(db *gorm.DB, userID int64) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("id = ?", userID).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

/* ====================== ATHLETE ====================== */

// FindAthleteByID nil tanpa error kalau tidak ada.
func FindAthleteByID(db *gorm.DB, athleteID int64) (*userModel.AthleteModel, error) {
	var a userModel.AthleteModel
	err := db.Where("id = ?", athleteID).Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindAthleteByUserID nil tanpa error kalau user belum punya record athlete.
func FindAthleteByUserID(db *gorm.DB, userID int64) (*userModel.AthleteRecord, error) {
	var rec userModel.AthleteRecord
	err := db.Table("athletes AS a").
		Select("a.id AS athlete_id, u.name, u.email, u.branch_id").
		Joins("JOIN users AS u ON a.user_id = u.id").
		Where("u.id = ?", userID).
		Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func ListApprovedAthletesByBranch(db *gorm.DB, branchID int64) ([]userModel.BranchAthlete, error) {
	rows := make([]userModel.BranchAthlete, 0)
	err := db.Table("athletes AS a").
		Select("a.id AS athlete_id, u.name AS athlete_name").
		Joins("JOIN users AS u ON a.user_id = u.id").
		Where("u.branch_id = ? AND u.role = ? AND u.approved = ?", branchID, constants.RoleAthlete, true).
		Order("u.name").
		Scan(&rows).Error
	return rows, err
}
