package repository

import (
	"sistem-pengajuan/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	FindByUserID(userID string) (*model.Profile, error)
	FindByEmail(email string) (*model.Profile, error)
	GetAll(search string) ([]model.Profile, error)
	Create(profile *model.Profile) error
	Update(profile *model.Profile) error
	UpdateFields(userID string, fields map[string]interface{}) error
	UpdateNameRole(userID, fullName, role string) error
	Count() (int64, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db}
}

func (r *profileRepository) FindByUserID(userID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByEmail(email string) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.Where("email = ?", email).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetAll(search string) ([]model.Profile, error) {
	var profiles []model.Profile
	query := r.db.Order("full_name asc")

	if search != "" {
		searchPattern := "%" + search + "%"
		query = query.Where("full_name LIKE ? OR email LIKE ?", searchPattern, searchPattern)
	}

	err := query.Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) Create(profile *model.Profile) error {
	return r.db.Create(profile).Error
}

func (r *profileRepository) Update(profile *model.Profile) error {
	return r.db.Save(profile).Error
}

// UpdateFields update sebagian kolom saja. Value nil akan tersimpan sebagai
// NULL, dipakai untuk normalisasi string kosong dari form admin.
func (r *profileRepository) UpdateFields(userID string, fields map[string]interface{}) error {
	return r.db.Model(&model.Profile{}).Where("user_id = ?", userID).Updates(fields).Error
}

func (r *profileRepository) UpdateNameRole(userID, fullName, role string) error {
	return r.db.Model(&model.Profile{}).Where("user_id = ?", userID).
		Updates(map[string]interface{}{"full_name": fullName, "role": role}).Error
}

func (r *profileRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Profile{}).Count(&count).Error
	return count, err
}
