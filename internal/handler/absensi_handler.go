package handler

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"sistem-pengajuan/internal/model"
	"sistem-pengajuan/internal/repository"
	"sistem-pengajuan/internal/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AbsensiHandler struct {
	repo  repository.AbsensiRepository
	store *storage.Storage
}

func NewAbsensiHandler(repo repository.AbsensiRepository, store *storage.Storage) *AbsensiHandler {
	return &AbsensiHandler{repo: repo, store: store}
}

func (h *AbsensiHandler) GetToday(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	today := time.Now().Format("2006-01-02")

	absensi, err := h.repo.GetByDate(userID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{"success": true, "message": "Belum ada absensi hari ini", "data": nil})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal mengambil absensi: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Berhasil mengambil absensi hari ini", "data": absensi})
}

func (h *AbsensiHandler) CheckIn(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	now := time.Now()
	today := now.Format("2006-01-02")

	// Cek double check-in
	if existing, err := h.repo.GetByDate(userID, today); err == nil && existing != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Anda sudah melakukan check-in hari ini"})
	}

	file, err := c.FormFile("foto")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Field wajib diisi: foto"})
	}

	// Simpan foto: foto-absensi/{userID}/{tanggal}_masuk{ext}
	objectPath := fmt.Sprintf("%s/%s_masuk%s", userID, today, filepath.Ext(file.Filename))
	fullPath, err := h.store.PathFor(storage.BucketFotoAbsensi, objectPath)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal menyiapkan penyimpanan foto: " + err.Error()})
	}
	if err := c.SaveFile(file, fullPath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal menyimpan foto: " + err.Error()})
	}

	absensi := model.Absensi{
		UserID:    userID,
		Tanggal:   today,
		JamMasuk:  now.Format("15:04:05"),
		FotoMasuk: objectPath,
		Status:    model.StatusUntukHari(now),
	}

	if err := h.repo.Create(&absensi); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal menyimpan absensi: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Check-in berhasil",
		"data": fiber.Map{
			"status":    absensi.Status,
			"jam_masuk": absensi.JamMasuk,
			"foto":      absensi.FotoMasuk,
		},
	})
}

func (h *AbsensiHandler) CheckOut(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	now := time.Now()
	today := now.Format("2006-01-02")

	absensi, err := h.repo.GetByDate(userID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Anda belum melakukan check-in hari ini"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal mengambil absensi: " + err.Error()})
	}
	if absensi.JamPulang != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Anda sudah melakukan check-out hari ini"})
	}

	// Foto pulang opsional
	if file, errFile := c.FormFile("foto"); errFile == nil {
		objectPath := fmt.Sprintf("%s/%s_pulang%s", userID, today, filepath.Ext(file.Filename))
		fullPath, errPath := h.store.PathFor(storage.BucketFotoAbsensi, objectPath)
		if errPath != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal menyiapkan penyimpanan foto: " + errPath.Error()})
		}
		if errSave := c.SaveFile(file, fullPath); errSave != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal menyimpan foto: " + errSave.Error()})
		}
		absensi.FotoPulang = objectPath
	}

	absensi.JamPulang = now.Format("15:04:05")

	if err := h.repo.Update(absensi); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal menyimpan absensi: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Check-out berhasil",
		"data": fiber.Map{
			"jam_pulang": absensi.JamPulang,
			"foto":       absensi.FotoPulang,
		},
	})
}

func (h *AbsensiHandler) GetHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	history, err := h.repo.GetHistory(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal mengambil riwayat: " + err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Berhasil mengambil riwayat absensi", "data": history})
}
