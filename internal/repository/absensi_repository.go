package repository

import (
	"sistem-pengajuan/internal/model"

	"gorm.io/gorm"
)

type AbsensiRepository interface {
	Create(absensi *model.Absensi) error
	Update(absensi *model.Absensi) error
	GetByDate(userID string, tanggal string) (*model.Absensi, error)
	GetHistory(userID string) ([]model.Absensi, error)
	GetByMonth(bulan string, tahun string) ([]model.Absensi, error)
	CountByDate(tanggal string) (int64, error)
}

type absensiRepository struct {
	db *gorm.DB
}

func NewAbsensiRepository(db *gorm.DB) AbsensiRepository {
	return &absensiRepository{db}
}

func (r *absensiRepository) Create(absensi *model.Absensi) error {
	return r.db.Create(absensi).Error
}

func (r *absensiRepository) Update(absensi *model.Absensi) error {
	return r.db.Save(absensi).Error
}

// Cek record hari tertentu (untuk validasi double check-in)
func (r *absensiRepository) GetByDate(userID string, tanggal string) (*model.Absensi, error) {
	var absensi model.Absensi
	err := r.db.Where("user_id = ? AND tanggal = ?", userID, tanggal).First(&absensi).Error
	if err != nil {
		return nil, err
	}
	return &absensi, nil
}

func (r *absensiRepository) GetHistory(userID string) ([]model.Absensi, error) {
	var history []model.Absensi
	err := r.db.Where("user_id = ?", userID).Order("tanggal desc").Find(&history).Error
	return history, err
}

func (r *absensiRepository) GetByMonth(bulan string, tahun string) ([]model.Absensi, error) {
	var list []model.Absensi
	prefix := tahun + "-" + bulan + "-%"
	err := r.db.Where("tanggal LIKE ?", prefix).Find(&list).Error
	return list, err
}

func (r *absensiRepository) CountByDate(tanggal string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Absensi{}).Where("tanggal = ?", tanggal).Count(&count).Error
	return count, err
}
