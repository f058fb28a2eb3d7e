package middleware

import (
	"sistem-pengajuan/internal/model"

	"github.com/gofiber/fiber/v2"
)

// Role gate: identity sudah resolve di Session, tinggal cek apakah role-nya
// masuk daftar yang diizinkan. Ditolak = 403 (beda dengan 401 dari Session).
// Superadmin otomatis lolos gate yang menerima admin.
func Role(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRole, ok := c.Locals("role").(string)
		if !ok || userRole == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false, "message": "Akses ditolak: role tidak valid",
			})
		}

		for _, role := range allowedRoles {
			if role == userRole {
				return c.Next()
			}
			if role == model.RoleAdmin && userRole == model.RoleSuperadmin {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false, "message": "Akses ditolak: butuh hak admin",
		})
	}
}

// IsAdminContext dipakai handler yang mengizinkan "pemilik resource ATAU admin".
func IsAdminContext(c *fiber.Ctx) bool {
	role, _ := c.Locals("role").(string)
	return role == model.RoleAdmin || role == model.RoleSuperadmin
}
