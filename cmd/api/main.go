package main

import (
	"fmt"

	"sistem-pengajuan/config"
	"sistem-pengajuan/internal/database"
	"sistem-pengajuan/internal/mailer"
	"sistem-pengajuan/internal/routes"
	"sistem-pengajuan/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	cfg := config.Load()

	fmt.Println("2. Mencoba koneksi ke Database...")
	config.ConnectDB(cfg)

	// Koneksi kedua dengan akun service, hanya untuk operasi admin
	privDB, err := config.ConnectPrivileged(cfg)
	if err != nil {
		panic("Gagal koneksi database privileged: " + err.Error())
	}
	priv := database.NewPrivileged(privDB)

	fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	store := storage.New(cfg.UploadDir)
	mail := mailer.New(cfg)

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // foto absensi + bukti pengajuan
	})

	// Middleware Global
	app.Use(cors.New())   // Agar API bisa diakses dari domain/port lain
	app.Use(logger.New()) // Agar log request muncul di terminal (Debugging)

	routes.SetupAuthRoutes(app, config.DB, cfg)
	routes.SetupEmployeeRoutes(app, config.DB, priv, cfg)
	routes.SetupUserRoutes(app, config.DB, priv, cfg, mail)
	routes.SetupAbsensiRoutes(app, config.DB, cfg, store)
	routes.SetupPengajuanRoutes(app, config.DB, priv, cfg, store)
	routes.SetupFileRoutes(app, config.DB, cfg, store)
	routes.SetupSettingRoutes(app, config.DB, priv, cfg)
	routes.SetupDashboardRoutes(app, config.DB, cfg)
	routes.SetupDebugRoutes(app, config.DB, cfg, store)

	fmt.Println("4. Server siap! Menunggu request di port :" + cfg.Port)
	app.Listen(":" + cfg.Port)
}
