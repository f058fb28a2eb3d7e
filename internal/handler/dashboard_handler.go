package handler

import (
	"time"

	"sistem-pengajuan/internal/model"
	"sistem-pengajuan/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	profileRepo   repository.ProfileRepository
	pengajuanRepo repository.PengajuanRepository
	absensiRepo   repository.AbsensiRepository
}

func NewDashboardHandler(profileRepo repository.ProfileRepository, pengajuanRepo repository.PengajuanRepository, absensiRepo repository.AbsensiRepository) *DashboardHandler {
	return &DashboardHandler{profileRepo: profileRepo, pengajuanRepo: pengajuanRepo, absensiRepo: absensiRepo}
}

// GetSummary (admin): angka-angka untuk kartu dashboard admin.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	totalPegawai, err := h.profileRepo.Count()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal menghitung pegawai: " + err.Error()})
	}

	pengajuanPending, err := h.pengajuanRepo.CountByStatus(model.PengajuanPending)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal menghitung pengajuan: " + err.Error()})
	}

	absenHariIni, err := h.absensiRepo.CountByDate(time.Now().Format("2006-01-02"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal menghitung absensi: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Berhasil mengambil ringkasan dashboard",
		"data": fiber.Map{
			"total_pegawai":     totalPegawai,
			"pengajuan_pending": pengajuanPending,
			"absen_hari_ini":    absenHariIni,
		},
	})
}
