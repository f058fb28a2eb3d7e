package model

import "gorm.io/gorm"

// Key setting yang dipakai aplikasi.
const SettingPengajuanDibuka = "pengajuan_dibuka"

// Setting adalah pasangan key/value global, hanya admin yang boleh mengubah.
type Setting struct {
	gorm.Model
	Key   string `json:"key" gorm:"unique;not null"`
	Value string `json:"value"`
}
