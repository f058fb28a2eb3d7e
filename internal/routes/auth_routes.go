package routes

import (
	"sistem-pengajuan/config"
	"sistem-pengajuan/internal/handler"
	"sistem-pengajuan/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Route auth sengaja tidak menerima *database.Privileged: login dan
// check-email cuma baca, channel tulis identity hanya di-wire di route admin.
func SetupAuthRoutes(app *fiber.App, db *gorm.DB, cfg config.AppConfig) {
	identityReader := repository.NewIdentityReader(db)
	profileRepo := repository.NewProfileRepository(db)
	hdl := handler.NewAuthHandler(cfg, identityReader, profileRepo)

	api := app.Group("/api/auth")
	api.Post("/login", hdl.Login)
	api.Post("/logout", hdl.Logout)
	api.Post("/check-email", hdl.CheckEmail)
}
