package routes

import (
	"sistem-pengajuan/config"
	"sistem-pengajuan/internal/database"
	"sistem-pengajuan/internal/handler"
	"sistem-pengajuan/internal/middleware"
	"sistem-pengajuan/internal/model"
	"sistem-pengajuan/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupEmployeeRoutes(app *fiber.App, db *gorm.DB, priv *database.Privileged, cfg config.AppConfig) {
	// Profil sendiri: koneksi biasa
	hdl := handler.NewEmployeeHandler(repository.NewProfileRepository(db))
	app.Get("/api/profile", middleware.Session(cfg), hdl.GetProfile)

	// Operasi admin menulis profil pegawai lain, jadi jalan di koneksi
	// privileged. Handler ini hanya terpasang di belakang role gate.
	adminHdl := handler.NewEmployeeHandler(repository.NewProfileRepository(priv.DB()))
	admin := app.Group("/api/employees", middleware.Session(cfg), middleware.Role(model.RoleAdmin))
	admin.Get("/", adminHdl.GetAll)
	admin.Put("/update", adminHdl.UpdateEmployee)
}
