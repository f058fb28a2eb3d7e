package main

import (
	"fmt"
	"log"

	"sistem-pengajuan/config"
	"sistem-pengajuan/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("Memulai Database Seeding...")

	// Load .env manual karena ini script terpisah
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	cfg := config.Load()
	config.ConnectDB(cfg)

	fmt.Println("Menjalankan SeedAll...")
	database.SeedAll(config.DB)

	fmt.Println("Seeding Selesai!")
}
