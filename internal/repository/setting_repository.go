package repository

import (
	"sistem-pengajuan/internal/model"

	"gorm.io/gorm"
)

type SettingRepository interface {
	Get(key string) (*model.Setting, error)
	Set(key string, value string) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db}
}

func (r *settingRepository) Get(key string) (*model.Setting, error) {
	var setting model.Setting
	err := r.db.Where("`key` = ?", key).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Set upsert: buat row baru kalau key belum ada, selain itu update value.
func (r *settingRepository) Set(key string, value string) error {
	setting := model.Setting{Key: key, Value: value}
	err := r.db.Where("`key` = ?", key).FirstOrCreate(&setting, model.Setting{Key: key}).Error
	if err != nil {
		return err
	}
	return r.db.Model(&setting).Update("value", value).Error
}
