package routes

import (
	"sistem-pengajuan/config"
	"sistem-pengajuan/internal/handler"
	"sistem-pengajuan/internal/middleware"
	"sistem-pengajuan/internal/model"
	"sistem-pengajuan/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB, cfg config.AppConfig) {
	hdl := handler.NewDashboardHandler(
		repository.NewProfileRepository(db),
		repository.NewPengajuanRepository(db),
		repository.NewAbsensiRepository(db),
	)

	app.Get("/api/admin/dashboard", middleware.Session(cfg), middleware.Role(model.RoleAdmin), hdl.GetSummary)
}
