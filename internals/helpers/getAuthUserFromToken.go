package helper

import (
	"github.com/gofiber/fiber/v2"

	userModel "clubpay_backend/internals/features/users/account/model"
)

// LocAuthUser key locals yang diisi middleware AuthJWT.
const LocAuthUser = "auth_user"

// GetAuthUser ambil user yang sudah diverifikasi dari c.Locals.
// 401 kalau belum login.
func GetAuthUser(c *fiber.Ctx) (*userModel.UserModel, error) {
	switch u := c.Locals(LocAuthUser).(type) {
	case *userModel.UserModel:
		if u != nil {
			return u, nil
		}
	case userModel.UserModel:
		return &u, nil
	}
	return nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
}
