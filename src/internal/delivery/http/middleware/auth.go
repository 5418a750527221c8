package middleware

import (
	"strings"

	"wasset-admin/src/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

const userContextKey = "auth.claim"

// VerifyBearer validates the identity provider's bearer token. The service
// never issues tokens, it only checks the signature and expiry.
func VerifyBearer(cfg *viper.Viper) fiber.Handler {
	secret := []byte(cfg.GetString("jwt.secret"))

	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "يجب تسجيل الدخول أولاً",
			})
		}

		raw := strings.TrimPrefix(authHeader, "Bearer ")
		claim := new(token.Claim)
		parsed, err := jwt.ParseWithClaims(raw, claim, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !parsed.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "رمز المصادقة غير صحيح",
			})
		}

		ctx.Locals(userContextKey, claim)
		return ctx.Next()
	}
}

// GetUser returns the verified claim stored by VerifyBearer.
func GetUser(ctx *fiber.Ctx) *token.Claim {
	claim, ok := ctx.Locals(userContextKey).(*token.Claim)
	if !ok {
		return &token.Claim{}
	}
	return claim
}
