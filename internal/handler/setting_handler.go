package handler

import (
	"errors"
	"strconv"

	"sistem-pengajuan/internal/model"
	"sistem-pengajuan/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SettingHandler struct {
	repo repository.SettingRepository
}

func NewSettingHandler(repo repository.SettingRepository) *SettingHandler {
	return &SettingHandler{repo: repo}
}

// GetSubmissionStatus: default terbuka kalau row setting belum pernah dibuat.
func (h *SettingHandler) GetSubmissionStatus(c *fiber.Ctx) error {
	setting, err := h.repo.Get(model.SettingPengajuanDibuka)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{"success": true, "isOpen": true})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal mengambil setting: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "isOpen": setting.Value != "false"})
}

type SetSubmissionStatusRequest struct {
	IsOpen *bool `json:"isOpen"`
}

// SetSubmissionStatus (admin): buka/tutup pengajuan untuk seluruh pegawai.
func (h *SettingHandler) SetSubmissionStatus(c *fiber.Ctx) error {
	var req SetSubmissionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Format data salah"})
	}
	if req.IsOpen == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Field wajib diisi: isOpen"})
	}

	if err := h.repo.Set(model.SettingPengajuanDibuka, strconv.FormatBool(*req.IsOpen)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal menyimpan setting: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "isOpen": *req.IsOpen, "message": "Status pengajuan berhasil diperbarui"})
}
