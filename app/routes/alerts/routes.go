package alerts

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/routes/auth"
)

// SetupAlertRoutes registers the alert endpoints.
func SetupAlertRoutes(app *fiber.App, db *sql.DB, codec auth.Codec) {
	requireAuth := auth.RequireAuth(codec)
	requireTeacher := auth.RequireRole(models.RoleTeacher)

	app.Get("/api/alerts",
		func(c *fiber.Ctx) error { return ListAlertsAPI(c, db) })
	app.Post("/api/alerts", requireAuth, requireTeacher,
		func(c *fiber.Ctx) error { return CreateAlertAPI(c, db) })
	app.Put("/api/alerts/:id", requireAuth, requireTeacher,
		func(c *fiber.Ctx) error { return UpdateAlertAPI(c, db) })
	app.Delete("/api/alerts/:id", requireAuth, requireTeacher,
		func(c *fiber.Ctx) error { return DeleteAlertAPI(c, db) })
}
