package exams

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/routes/auth"
)

// SetupExamRoutes registers CBT exam authoring, the pupil exam session
// lifecycle and exam result endpoints.
func SetupExamRoutes(app *fiber.App, db *sql.DB, codec auth.Codec) {
	requireAuth := auth.RequireAuth(codec)
	requireTeacher := auth.RequireRole(models.RoleTeacher)
	requirePupil := auth.RequireRole(models.RolePupil)

	app.Post("/api/teacher/cbt-exams", requireAuth, requireTeacher,
		func(c *fiber.Ctx) error { return CreateExamAPI(c, db) })
	app.Get("/api/teacher/cbt-exams",
		func(c *fiber.Ctx) error { return ListExamsAPI(c, db) })
	app.Put("/api/teacher/cbt-exams", requireAuth, requireTeacher,
		func(c *fiber.Ctx) error { return UpdateExamAPI(c, db) })
	app.Delete("/api/teacher/cbt-exams", requireAuth, requireTeacher,
		func(c *fiber.Ctx) error { return DeleteExamAPI(c, db) })

	app.Get("/api/pupils/cbt_exams",
		func(c *fiber.Ctx) error { return ListExamsAPI(c, db) })
	app.Post("/api/pupils/exams/:id/start", requireAuth, requirePupil,
		func(c *fiber.Ctx) error { return StartExamAPI(c, db) })
	app.Put("/api/pupils/exams/:id/progress", requireAuth, requirePupil,
		func(c *fiber.Ctx) error { return SaveProgressAPI(c, db) })
	app.Post("/api/pupils/submit-exam", requireAuth, requirePupil,
		func(c *fiber.Ctx) error { return SubmitExamAPI(c, db) })
	app.Get("/api/pupils/exam-results", requireAuth, requirePupil,
		func(c *fiber.Ctx) error { return MyResultsAPI(c, db) })

	app.Get("/api/teacher/exam-results",
		func(c *fiber.Ctx) error { return ListResultsAPI(c, db) })
	app.Post("/api/teacher/exam-results", requireAuth, requireTeacher,
		func(c *fiber.Ctx) error { return CreateResultAPI(c, db) })
}
