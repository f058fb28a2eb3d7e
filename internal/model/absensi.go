package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	AbsensiHadir  = "hadir"
	AbsensiLibur  = "libur"
	AbsensiLembur = "lembur"
)

// Absensi adalah catatan kehadiran per user per hari.
type Absensi struct {
	gorm.Model
	UserID     string `json:"user_id" gorm:"type:char(36);index;not null"`
	Tanggal    string `json:"tanggal" gorm:"index"` // Format YYYY-MM-DD
	JamMasuk   string `json:"jam_masuk"`
	JamPulang  string `json:"jam_pulang"`
	FotoMasuk  string `json:"foto_masuk"`  // path di bucket foto-absensi
	FotoPulang string `json:"foto_pulang"` // path di bucket foto-absensi
	Status     string `json:"status"`      // hadir / libur / lembur
}

// StatusUntukHari menentukan status absen dari hari dalam seminggu:
// check-in di hari kerja = hadir, check-in di akhir pekan = lembur.
func StatusUntukHari(t time.Time) string {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return AbsensiLembur
	default:
		return AbsensiHadir
	}
}
