package middleware

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// RequireRoles menolak request kalau role di token tidak ada di daftar.
func RequireRoles(feature string, roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := helperAuth.RoleFromLocals(c)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Role tidak ada di token")
		}
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "❌ Role "+role+" tidak boleh mengakses fitur "+feature+".")
		}
		return c.Next()
	}
}
