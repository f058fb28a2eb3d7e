package handler

import (
	"fmt"
	"strconv"
	"time"

	"sistem-pengajuan/internal/model"
	"sistem-pengajuan/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	profileRepo repository.ProfileRepository
	absensiRepo repository.AbsensiRepository
}

func NewReportHandler(profileRepo repository.ProfileRepository, absensiRepo repository.AbsensiRepository) *ReportHandler {
	return &ReportHandler{profileRepo: profileRepo, absensiRepo: absensiRepo}
}

// GetMonthlyRekap (admin) merekap kehadiran seluruh pegawai dalam satu bulan.
// Hari tanpa record: akhir pekan dihitung libur, hari kerja yang sudah lewat
// dihitung tanpa keterangan, hari yang belum lewat dibiarkan kosong.
func (h *ReportHandler) GetMonthlyRekap(c *fiber.Ctx) error {
	bulan := c.Query("bulan")
	tahun := c.Query("tahun")

	if bulan == "" || tahun == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Field wajib diisi: bulan dan tahun"})
	}
	if len(bulan) == 1 {
		bulan = "0" + bulan
	}

	monthNum, errBulan := strconv.Atoi(bulan)
	yearNum, errTahun := strconv.Atoi(tahun)
	if errBulan != nil || errTahun != nil || monthNum < 1 || monthNum > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Bulan atau tahun tidak valid"})
	}

	profiles, err := h.profileRepo.GetAll("")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal mengambil data pegawai: " + err.Error()})
	}

	absensis, err := h.absensiRepo.GetByMonth(bulan, tahun)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Gagal mengambil data absensi: " + err.Error()})
	}

	// Map[UserID][Tanggal] = Absensi untuk akses cepat
	absensiMap := make(map[string]map[string]model.Absensi)
	for _, a := range absensis {
		if _, ok := absensiMap[a.UserID]; !ok {
			absensiMap[a.UserID] = make(map[string]model.Absensi)
		}
		absensiMap[a.UserID][a.Tanggal] = a
	}

	daysInMonth := time.Date(yearNum, time.Month(monthNum)+1, 0, 0, 0, 0, 0, time.Local).Day()
	today := time.Now().Format("2006-01-02")

	var reportData []fiber.Map
	for _, p := range profiles {
		hadir, lembur, libur, tanpaKeterangan := 0, 0, 0, 0
		harian := make(map[string]string)

		for d := 1; d <= daysInMonth; d++ {
			date := time.Date(yearNum, time.Month(monthNum), d, 0, 0, 0, 0, time.Local)
			dateStr := date.Format("2006-01-02")
			dayKey := fmt.Sprintf("%02d", d)

			if record, ok := absensiMap[p.UserID][dateStr]; ok {
				switch record.Status {
				case model.AbsensiLembur:
					harian[dayKey] = "L+"
					lembur++
				case model.AbsensiLibur:
					harian[dayKey] = "L"
					libur++
				default:
					harian[dayKey] = "H"
					hadir++
				}
				continue
			}

			isWeekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
			switch {
			case isWeekend:
				harian[dayKey] = "L"
				libur++
			case dateStr < today:
				harian[dayKey] = "-"
				tanpaKeterangan++
			default:
				harian[dayKey] = ""
			}
		}

		reportData = append(reportData, fiber.Map{
			"user_id":          p.UserID,
			"full_name":        p.FullName,
			"hadir":            hadir,
			"lembur":           lembur,
			"libur":            libur,
			"tanpa_keterangan": tanpaKeterangan,
			"harian":           harian,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Berhasil mengambil rekap bulanan",
		"data": fiber.Map{
			"bulan":       bulan,
			"tahun":       tahun,
			"jumlah_hari": daysInMonth,
			"rekap":       reportData,
		},
	})
}
