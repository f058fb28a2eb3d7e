package repository

import (
	"sistem-pengajuan/internal/database"
	"sistem-pengajuan/internal/model"

	"gorm.io/gorm"
)

// IdentityReader adalah akses baca ke tabel identities lewat koneksi biasa.
// Route publik (login, check-email) cukup memegang ini.
type IdentityReader interface {
	FindByEmail(email string) (*model.Identity, error)
	FindByID(id string) (*model.Identity, error)
}

// IdentityRepository menambah operasi tulis di atas IdentityReader. Operasi
// tulis memakai koneksi privileged karena akun biasa tidak punya hak tulis
// ke tabel identities; hanya route admin yang boleh mengonstruksi ini.
type IdentityRepository interface {
	IdentityReader
	Create(identity *model.Identity) error
	Delete(id string) error
	UpdateMetadata(id, fullName, role string) error
}

type identityReader struct {
	db *gorm.DB
}

func NewIdentityReader(db *gorm.DB) IdentityReader {
	return &identityReader{db: db}
}

func (r *identityReader) FindByEmail(email string) (*model.Identity, error) {
	var identity model.Identity
	err := r.db.Where("email = ?", email).First(&identity).Error
	if err != nil {
		return nil, err
	}
	return &identity, nil
}

func (r *identityReader) FindByID(id string) (*model.Identity, error) {
	var identity model.Identity
	err := r.db.Where("id = ?", id).First(&identity).Error
	if err != nil {
		return nil, err
	}
	return &identity, nil
}

type identityRepository struct {
	identityReader
	priv *database.Privileged
}

func NewIdentityRepository(db *gorm.DB, priv *database.Privileged) IdentityRepository {
	return &identityRepository{identityReader: identityReader{db: db}, priv: priv}
}

func (r *identityRepository) Create(identity *model.Identity) error {
	return r.priv.DB().Create(identity).Error
}

// Delete menghapus identity permanen. Profile ikut terhapus lewat
// constraint ON DELETE CASCADE di database.
func (r *identityRepository) Delete(id string) error {
	return r.priv.DB().Where("id = ?", id).Delete(&model.Identity{}).Error
}

func (r *identityRepository) UpdateMetadata(id, fullName, role string) error {
	return r.priv.DB().Model(&model.Identity{}).Where("id = ?", id).
		Updates(map[string]interface{}{"full_name": fullName, "role": role}).Error
}
