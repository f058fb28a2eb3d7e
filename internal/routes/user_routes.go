package routes

import (
	"sistem-pengajuan/config"
	"sistem-pengajuan/internal/database"
	"sistem-pengajuan/internal/handler"
	"sistem-pengajuan/internal/mailer"
	"sistem-pengajuan/internal/middleware"
	"sistem-pengajuan/internal/model"
	"sistem-pengajuan/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB, priv *database.Privileged, cfg config.AppConfig, mail mailer.Sender) {
	identityRepo := repository.NewIdentityRepository(db, priv)
	profileRepo := repository.NewProfileRepository(priv.DB())
	hdl := handler.NewUserAdminHandler(identityRepo, profileRepo, mail)

	sess := middleware.Session(cfg)
	adminGate := middleware.Role(model.RoleAdmin)

	app.Post("/api/invite", sess, adminGate, hdl.Invite)

	users := app.Group("/api/users", sess, adminGate)
	users.Delete("/delete", hdl.DeleteUser)
	users.Post("/update", hdl.UpdateUser)
}
