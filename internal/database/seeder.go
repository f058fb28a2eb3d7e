package database

import (
	"log"

	"sistem-pengajuan/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll menyiapkan data minimum: akun superadmin pertama dan
// setting default pengajuan.
func SeedAll(db *gorm.DB) {
	// 1. Seed Identity + Profile Superadmin
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("superadmin123"), bcrypt.DefaultCost)

	identity := model.Identity{
		ID:           uuid.NewString(),
		Email:        "superadmin@kantor.local",
		PasswordHash: string(hashedPassword),
		FullName:     "Super Administrator",
		Role:         model.RoleSuperadmin,
	}
	result := db.Where(model.Identity{Email: identity.Email}).FirstOrCreate(&identity)
	if result.Error != nil {
		log.Println("Gagal seed identity superadmin:", result.Error)
		return
	}
	// Paksa sinkron password default meskipun akun sudah ada
	db.Model(&identity).Update("password_hash", string(hashedPassword))

	profile := model.Profile{
		UserID:   identity.ID,
		FullName: identity.FullName,
		Email:    identity.Email,
		Role:     model.RoleSuperadmin,
	}
	db.Where(model.Profile{UserID: identity.ID}).FirstOrCreate(&profile)

	// 2. Seed setting default: pengajuan terbuka
	setting := model.Setting{Key: model.SettingPengajuanDibuka, Value: "true"}
	db.Where(model.Setting{Key: setting.Key}).FirstOrCreate(&setting)

	log.Println("Seeding superadmin & setting default berhasil!")
}
