package handler

import (
	"strings"

	"sistem-pengajuan/internal/mailer"
	"sistem-pengajuan/internal/model"
	"sistem-pengajuan/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserAdminHandler mengelola akun user (identity + profile).
// Dipasang hanya di belakang role gate admin; repo yang dipakai
// berjalan di atas koneksi privileged.
type UserAdminHandler struct {
	identityRepo repository.IdentityRepository
	profileRepo  repository.ProfileRepository
	mail         mailer.Sender
}

func NewUserAdminHandler(identityRepo repository.IdentityRepository, profileRepo repository.ProfileRepository, mail mailer.Sender) *UserAdminHandler {
	return &UserAdminHandler{identityRepo: identityRepo, profileRepo: profileRepo, mail: mail}
}

type InviteRequest struct {
	InviteEmail    string `json:"invite_email" validate:"required,email"`
	InviteFullName string `json:"invite_full_name" validate:"required"`
	InviteRole     string `json:"invite_role" validate:"required,oneof=superadmin admin employee"`
}

func (h *UserAdminHandler) Invite(c *fiber.Ctx) error {
	var req InviteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Format data salah"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": validationMessage(err)})
	}

	tempPassword := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	hashed, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal membuat password sementara"})
	}

	identity := model.Identity{
		ID:           uuid.NewString(),
		Email:        req.InviteEmail,
		PasswordHash: string(hashed),
		FullName:     req.InviteFullName,
		Role:         req.InviteRole,
	}
	if err := h.identityRepo.Create(&identity); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal membuat akun: " + err.Error()})
	}

	profile := model.Profile{
		UserID:   identity.ID,
		FullName: req.InviteFullName,
		Email:    req.InviteEmail,
		Role:     req.InviteRole,
	}
	if err := h.profileRepo.Create(&profile); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal membuat profil: " + err.Error()})
	}

	if err := h.mail.SendInvite(req.InviteEmail, req.InviteFullName, req.InviteRole, tempPassword); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Akun dibuat tapi email undangan gagal terkirim: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Undangan berhasil dikirim ke " + req.InviteEmail})
}

type DeleteUserRequest struct {
	UserID string `json:"userId"`
}

func (h *UserAdminHandler) DeleteUser(c *fiber.Ctx) error {
	var req DeleteUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Format data salah"})
	}
	if strings.TrimSpace(req.UserID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Field wajib diisi: userId"})
	}

	// Profile ikut terhapus lewat cascade di database
	if err := h.identityRepo.Delete(req.UserID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal menghapus user: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "User berhasil dihapus"})
}

type UpdateUserRequest struct {
	ID       string `json:"id"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=superadmin admin employee"`
}

// UpdateUser melakukan 2 write berurutan: row profile dulu, lalu metadata
// identity. Tidak transaksional dan tidak ada rollback: kalau write kedua
// gagal, profile sudah terlanjur berubah dan response-nya 500.
func (h *UserAdminHandler) UpdateUser(c *fiber.Ctx) error {
	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Format data salah"})
	}
	if strings.TrimSpace(req.ID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Field wajib diisi: id"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": validationMessage(err)})
	}

	if err := h.profileRepo.UpdateNameRole(req.ID, req.FullName, req.Role); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal update profil: " + err.Error()})
	}

	if err := h.identityRepo.UpdateMetadata(req.ID, req.FullName, req.Role); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Profil tersimpan tapi metadata identity gagal diupdate: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "User berhasil diperbarui"})
}
