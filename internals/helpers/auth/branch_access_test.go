package auth

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"clubpay_backend/internals/constants"
	userModel "clubpay_backend/internals/features/users/account/model"
)

func branch(id int64) *int64 { return &id }

func TestCanAccessBranch(t *testing.T) {
	tests := []struct {
		name    string
		user    *userModel.UserModel
		branch  int64
		allowed bool
	}{
		{"head coach any branch", &userModel.UserModel{Role: constants.RoleHeadCoach, BranchID: branch(1)}, 9, true},
		{"head coach without branch", &userModel.UserModel{Role: constants.RoleHeadCoach}, 3, true},
		{"coach own branch", &userModel.UserModel{Role: constants.RoleCoach, BranchID: branch(2)}, 2, true},
		{"coach other branch", &userModel.UserModel{Role: constants.RoleCoach, BranchID: branch(2)}, 3, false},
		{"coach without branch", &userModel.UserModel{Role: constants.RoleCoach}, 2, false},
		{"athlete own branch", &userModel.UserModel{Role: constants.RoleAthlete, BranchID: branch(2)}, 2, false},
		{"nil user", nil, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanAccessBranch(tt.user, tt.branch)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			var fe *fiber.Error
			if assert.True(t, errors.As(err, &fe)) {
				assert.Equal(t, fiber.StatusForbidden, fe.Code)
				assert.Equal(t, constants.ErrBranchAccessDenied, fe.Message)
			}
		})
	}
}
