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

func SetupDebugRoutes(app *fiber.App, db *gorm.DB, cfg config.AppConfig, store *storage.Storage) {
	hdl := handler.NewDebugHandler(store, repository.NewProfileRepository(db))

	app.Get("/api/debug/check-storage", middleware.Session(cfg), middleware.Role(model.RoleAdmin), hdl.CheckStorage)
}
