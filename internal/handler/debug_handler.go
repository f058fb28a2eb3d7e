package handler

import (
	"sistem-pengajuan/internal/repository"
	"sistem-pengajuan/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// DebugHandler: endpoint diagnostik khusus admin untuk cek isi storage.
type DebugHandler struct {
	store       *storage.Storage
	profileRepo repository.ProfileRepository
}

func NewDebugHandler(store *storage.Storage, profileRepo repository.ProfileRepository) *DebugHandler {
	return &DebugHandler{store: store, profileRepo: profileRepo}
}

func (h *DebugHandler) CheckStorage(c *fiber.Ctx) error {
	buckets, err := h.store.ListBuckets()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal membaca storage: " + err.Error()})
	}

	bucketInfo := make([]fiber.Map, 0, len(buckets))
	for _, b := range buckets {
		objects, errList := h.store.ListObjects(b, 5)
		if errList != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal membaca bucket " + b + ": " + errList.Error()})
		}
		bucketInfo = append(bucketInfo, fiber.Map{
			"name":   b,
			"sample": objects,
		})
	}

	totalPegawai, err := h.profileRepo.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal menghitung profil: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Diagnostik storage",
		"data": fiber.Map{
			"buckets":       bucketInfo,
			"total_profile": totalPegawai,
		},
	})
}
