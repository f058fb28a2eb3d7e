package config

import (
	"fmt"
	"sistem-pengajuan/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func buildDSN(user, password, host, port, name string) string {
	// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, name)
}

func ConnectDB(cfg AppConfig) {
	dsn := buildDSN(cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Gagal koneksi ke database!")
	}

	fmt.Println("Koneksi Database Berhasil!")

	// Auto Migration: Membuat tabel otomatis berdasarkan struct di folder model
	db.AutoMigrate(&model.Identity{})
	db.AutoMigrate(&model.Profile{})
	db.AutoMigrate(&model.Pengajuan{})
	db.AutoMigrate(&model.PengajuanItem{})
	db.AutoMigrate(&model.PengajuanBukti{})
	db.AutoMigrate(&model.Absensi{})
	db.AutoMigrate(&model.Setting{})

	DB = db
}

// ConnectPrivileged membuka koneksi kedua dengan akun service database.
// Koneksi ini hanya dipakai handler admin yang sudah lolos role gate,
// jangan pernah dipakai di route publik.
func ConnectPrivileged(cfg AppConfig) (*gorm.DB, error) {
	dsn := buildDSN(cfg.DBServiceUser, cfg.DBServicePassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
