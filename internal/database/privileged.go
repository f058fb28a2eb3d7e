package database

import "gorm.io/gorm"

// Privileged membungkus koneksi database berkredensial service (elevated).
// Objek ini capability: dibuat sekali di startup lalu HANYA dioper ke
// repository/handler yang dipasang di belakang role gate admin. Route publik
// tidak boleh memegang objek ini.
type Privileged struct {
	db *gorm.DB
}

func NewPrivileged(db *gorm.DB) *Privileged {
	return &Privileged{db: db}
}

func (p *Privileged) DB() *gorm.DB {
	return p.db
}
