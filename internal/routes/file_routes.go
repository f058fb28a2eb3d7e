package routes

import (
	"sistem-pengajuan/config"
	"sistem-pengajuan/internal/handler"
	"sistem-pengajuan/internal/middleware"
	"sistem-pengajuan/internal/repository"
	"sistem-pengajuan/internal/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupFileRoutes(app *fiber.App, db *gorm.DB, cfg config.AppConfig, store *storage.Storage) {
	hdl := handler.NewFileHandler(store, repository.NewPengajuanRepository(db))

	app.Get("/api/foto-absensi/*", middleware.Session(cfg), hdl.GetFotoAbsensi)
	app.Get("/api/bukti-pengajuan/*", middleware.Session(cfg), hdl.GetBuktiPengajuan)
}
