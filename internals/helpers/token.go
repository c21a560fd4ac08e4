package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kursusku_backend/internals/configs"
)

// Ambil user_id dari c.Locals("user_id")
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
	}
}

// GetUserRole membaca role dari locals (diisi AuthJWT). Kosong = anonim.
func GetUserRole(c *fiber.Ctx) string {
	if v, ok := c.Locals("userRole").(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// =======================
// Permission checker
// =======================
// Menjawab apakah role caller memenuhi kapabilitas tertentu.
// RoleConfig dipass eksplisit supaya identitas role tidak dibaca dari env
// di tiap call site.

func HasTeacherCapability(role string, rc configs.RoleConfig) bool {
	return role == rc.TeacherRoleID || role == rc.AdminRoleID || role == rc.OwnerRoleID
}

func HasAdminCapability(role string, rc configs.RoleConfig) bool {
	return role == rc.AdminRoleID || role == rc.OwnerRoleID
}

func IsTeacherOrAbove(c *fiber.Ctx) bool {
	return HasTeacherCapability(GetUserRole(c), configs.Roles)
}

func IsAdminOrOwner(c *fiber.Ctx) bool {
	return HasAdminCapability(GetUserRole(c), configs.Roles)
}
