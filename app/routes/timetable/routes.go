package timetable

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/routes/auth"
)

// SetupTimetableRoutes registers the timetable and class list endpoints.
func SetupTimetableRoutes(app *fiber.App, db *sql.DB, codec auth.Codec) {
	requireAuth := auth.RequireAuth(codec)
	requireTeacher := auth.RequireRole(models.RoleTeacher)

	app.Get("/api/timetable",
		func(c *fiber.Ctx) error { return ListTimetableAPI(c, db) })
	app.Post("/api/timetable", requireAuth, requireTeacher,
		func(c *fiber.Ctx) error { return CreateEntryAPI(c, db) })

	app.Get("/api/classes",
		func(c *fiber.Ctx) error { return ListClassesAPI(c, db) })
}
