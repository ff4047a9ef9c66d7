// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	userRepo "clubpay_backend/internals/features/users/account/repository"
	helper "clubpay_backend/internals/helpers"
)

type AuthJWTOpts struct {
	DB        *gorm.DB
	Log       *zap.Logger
	Secret    string
	Algorithm string // default HS256
	// AllowCookieFallback pakai cookie access_token jika tidak ada Bearer
	AllowCookieFallback bool
}

// AuthJWT verifikasi bearer token, lalu muat user dari tabel users ke c.Locals(helper.LocAuthUser).
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}
	alg := strings.TrimSpace(o.Algorithm)
	if alg == "" {
		alg = jwt.SigningMethodHS256.Alg()
	}
	log := o.Log
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token
		raw, err := extractBearerToken(c, o.AllowCookieFallback)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 2) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok || t.Method.Alg() != alg {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			log.Debug("token rejected", zap.Error(err))
			return fiber.NewError(fiber.StatusUnauthorized, "Could not validate token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Could not validate token")
		}

		// 3) user id: sub → id → user_id
		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token: no user ID")
		}

		// 4) Muat user
		user, err := userRepo.FindUserByID(o.DB.WithContext(c.UserContext()), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "User not found")
			}
			log.Error("load user failed", zap.Int64("user_id", userID), zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "Database error")
		}

		c.Locals(helper.LocAuthUser, user)
		return c.Next()
	}
}
