package model

import "time"

// Identity adalah record user di penyedia auth (dikelola lewat koneksi
// privileged). Password tidak pernah ikut ter-serialize ke response.
type Identity struct {
	ID           string    `json:"id" gorm:"type:char(36);primaryKey"`
	Email        string    `json:"email" gorm:"unique;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"` // mirror metadata, sumber utama ada di tabel profiles
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
