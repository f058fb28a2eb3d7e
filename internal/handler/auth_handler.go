package handler

import (
	"errors"

	"sistem-pengajuan/config"
	"sistem-pengajuan/internal/middleware"
	"sistem-pengajuan/internal/repository"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler hanya memegang IdentityReader: route auth itu publik dan
// tidak boleh menyentuh channel tulis privileged.
type AuthHandler struct {
	cfg          config.AppConfig
	identityRepo repository.IdentityReader
	profileRepo  repository.ProfileRepository
}

func NewAuthHandler(cfg config.AppConfig, identityRepo repository.IdentityReader, profileRepo repository.ProfileRepository) *AuthHandler {
	return &AuthHandler{cfg: cfg, identityRepo: identityRepo, profileRepo: profileRepo}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Format data salah"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": validationMessage(err)})
	}

	identity, err := h.identityRepo.FindByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Email atau password salah"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Email atau password salah"})
	}

	// Role diambil dari profile, bukan dari mirror di identity
	profile, err := h.profileRepo.FindByUserID(identity.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal mengambil profil: " + err.Error()})
	}

	token, err := middleware.GenerateToken(h.cfg, identity.ID, identity.Email, profile.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal membuat token"})
	}

	middleware.SetSessionCookie(c, token, h.cfg.TokenTTL)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login berhasil",
		"token":   token,
		"data": fiber.Map{
			"id":        identity.ID,
			"email":     identity.Email,
			"full_name": profile.FullName,
			"role":      profile.Role,
		},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	middleware.ClearSessionCookie(c)
	return c.JSON(fiber.Map{"success": true, "message": "Logout berhasil"})
}

type CheckEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// CheckEmail dipakai form login/undangan untuk cek apakah email sudah terdaftar.
// "Tidak ketemu" itu hasil normal (exists=false), bukan error 500.
func (h *AuthHandler) CheckEmail(c *fiber.Ctx) error {
	var req CheckEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Format data salah"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": validationMessage(err)})
	}

	_, err := h.profileRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{"success": true, "exists": false})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal cek email: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "exists": true})
}
