package routes

import (
	"sistem-pengajuan/config"
	"sistem-pengajuan/internal/database"
	"sistem-pengajuan/internal/handler"
	"sistem-pengajuan/internal/middleware"
	"sistem-pengajuan/internal/model"
	"sistem-pengajuan/internal/repository"
	"sistem-pengajuan/internal/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPengajuanRoutes(app *fiber.App, db *gorm.DB, priv *database.Privileged, cfg config.AppConfig, store *storage.Storage) {
	settingRepo := repository.NewSettingRepository(db)
	hdl := handler.NewPengajuanHandler(repository.NewPengajuanRepository(db), settingRepo, store)

	api := app.Group("/api/pengajuan", middleware.Session(cfg))
	api.Post("/", hdl.Create)
	api.Get("/", hdl.GetOwn)
	api.Get("/:id/bukti", hdl.GetBukti)
	api.Get("/:id", hdl.GetDetail)

	// Approval menulis pengajuan milik user lain: koneksi privileged,
	// di belakang role gate admin.
	adminHdl := handler.NewPengajuanHandler(repository.NewPengajuanRepository(priv.DB()), settingRepo, store)
	admin := app.Group("/api/admin/pengajuan", middleware.Session(cfg), middleware.Role(model.RoleAdmin))
	admin.Get("/", adminHdl.GetAllAdmin)
	admin.Put("/:id/status", adminHdl.UpdateStatus)
}
