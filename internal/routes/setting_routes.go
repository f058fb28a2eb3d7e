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

func SetupSettingRoutes(app *fiber.App, db *gorm.DB, priv *database.Privileged, cfg config.AppConfig) {
	hdl := handler.NewSettingHandler(repository.NewSettingRepository(db))
	adminHdl := handler.NewSettingHandler(repository.NewSettingRepository(priv.DB()))

	// Baca boleh semua user login, tulis hanya admin
	app.Get("/api/settings/submission-status", middleware.Session(cfg), hdl.GetSubmissionStatus)
	app.Post("/api/settings/submission-status", middleware.Session(cfg), middleware.Role(model.RoleAdmin), adminHdl.SetSubmissionStatus)
}
