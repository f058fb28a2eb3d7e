package repository

import (
	"sistem-pengajuan/internal/model"

	"gorm.io/gorm"
)

type PengajuanRepository interface {
	Create(pengajuan *model.Pengajuan) error
	FindByID(id uint) (*model.Pengajuan, error)
	GetByUserID(userID string) ([]model.Pengajuan, error)
	GetAll(status string) ([]model.Pengajuan, error)
	UpdateStatus(id uint, status, catatanAdmin string) error
	AddBukti(bukti *model.PengajuanBukti) error
	GetBukti(pengajuanID uint) ([]model.PengajuanBukti, error)
	FindBuktiByPath(path string) (*model.PengajuanBukti, error)
	CountByStatus(status string) (int64, error)
}

type pengajuanRepository struct {
	db *gorm.DB
}

func NewPengajuanRepository(db *gorm.DB) PengajuanRepository {
	return &pengajuanRepository{db}
}

func (r *pengajuanRepository) Create(pengajuan *model.Pengajuan) error {
	return r.db.Create(pengajuan).Error
}

func (r *pengajuanRepository) FindByID(id uint) (*model.Pengajuan, error) {
	var pengajuan model.Pengajuan
	err := r.db.Preload("Items").Preload("BuktiFiles").First(&pengajuan, id).Error
	if err != nil {
		return nil, err
	}
	return &pengajuan, nil
}

func (r *pengajuanRepository) GetByUserID(userID string) ([]model.Pengajuan, error) {
	var list []model.Pengajuan
	err := r.db.Preload("Items").Where("user_id = ?", userID).
		Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *pengajuanRepository) GetAll(status string) ([]model.Pengajuan, error) {
	var list []model.Pengajuan
	query := r.db.Preload("Items").Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *pengajuanRepository) UpdateStatus(id uint, status, catatanAdmin string) error {
	return r.db.Model(&model.Pengajuan{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "catatan_admin": catatanAdmin}).Error
}

func (r *pengajuanRepository) AddBukti(bukti *model.PengajuanBukti) error {
	return r.db.Create(bukti).Error
}

func (r *pengajuanRepository) GetBukti(pengajuanID uint) ([]model.PengajuanBukti, error) {
	var list []model.PengajuanBukti
	err := r.db.Where("pengajuan_id = ?", pengajuanID).Find(&list).Error
	return list, err
}

func (r *pengajuanRepository) FindBuktiByPath(path string) (*model.PengajuanBukti, error) {
	var bukti model.PengajuanBukti
	err := r.db.Where("path = ?", path).First(&bukti).Error
	if err != nil {
		return nil, err
	}
	return &bukti, nil
}

func (r *pengajuanRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Pengajuan{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
