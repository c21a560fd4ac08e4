package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // pakai cookie access_token jika tidak ada Bearer
}

// AuthJWT memverifikasi access token HMAC dan meng-hydrate locals
// yang dipakai helper (user_id, userRole, user_name).
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		// 3) Validasi exp (dengan sedikit leeway utk clock skew)
		if err := validateExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		// Simpan raw claims (opsional)
		c.Locals("jwt_claims", claims)

		// 4) user_id: ambil id/sub/user_id dalam urutan preferensi
		userID := ""
		switch {
		case strClaim(claims, "id") != "":
			userID = strClaim(claims, "id")
		case strClaim(claims, "sub") != "":
			userID = strClaim(claims, "sub")
		case strClaim(claims, "user_id") != "":
			userID = strClaim(claims, "user_id")
		}
		if userID == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		if _, err := uuid.Parse(userID); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user_id tidak valid")
		}
		c.Locals("user_id", userID)

		// 5) role & nama
		if role := strClaim(claims, "role"); role != "" {
			c.Locals("userRole", role)
		}
		if name := strClaim(claims, "user_name"); name != "" {
			c.Locals("user_name", name)
		}

		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func validateExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return nil // token tanpa exp dianggap valid (issuer kita selalu set exp)
	}
	var exp int64
	switch t := expRaw.(type) {
	case float64:
		exp = int64(t)
	case int64:
		exp = t
	default:
		return fiber.NewError(fiber.StatusUnauthorized, "exp claim tidak valid")
	}
	if time.Now().Add(-leeway).Unix() > exp {
		return fiber.NewError(fiber.StatusUnauthorized, "token expired")
	}
	return nil
}
