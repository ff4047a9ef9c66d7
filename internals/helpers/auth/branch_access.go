package auth

import (
	"github.com/gofiber/fiber/v2"

	"clubpay_backend/internals/constants"
	userModel "clubpay_backend/internals/features/users/account/model"
)

// CanAccessBranch head_coach boleh semua branch, coach hanya branch miliknya.
// Selain itu 403.
func CanAccessBranch(user *userModel.UserModel, branchID int64) error {
	if user != nil {
		switch user.Role {
		case constants.RoleHeadCoach:
			return nil
		case constants.RoleCoach:
			if user.SameBranch(branchID) {
				return nil
			}
		}
	}
	return fiber.NewError(fiber.StatusForbidden, constants.ErrBranchAccessDenied)
}
