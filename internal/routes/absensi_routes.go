package routes

import (
	"sistem-pengajuan/config"
	"sistem-pengajuan/internal/handler"
	"sistem-pengajuan/internal/middleware"
	"sistem-pengajuan/internal/model"
	"sistem-pengajuan/internal/repository"
	"sistem-pengajuan/internal/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAbsensiRoutes(app *fiber.App, db *gorm.DB, cfg config.AppConfig, store *storage.Storage) {
	absensiRepo := repository.NewAbsensiRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	hdl := handler.NewAbsensiHandler(absensiRepo, store)
	reportHdl := handler.NewReportHandler(profileRepo, absensiRepo)

	api := app.Group("/api/absensi", middleware.Session(cfg))
	api.Get("/today", hdl.GetToday)
	api.Post("/checkin", hdl.CheckIn)
	api.Post("/checkout", hdl.CheckOut)
	api.Get("/riwayat", hdl.GetHistory)

	// Rekap bulanan hanya untuk admin
	api.Get("/rekap", middleware.Role(model.RoleAdmin), reportHdl.GetMonthlyRekap)
}
