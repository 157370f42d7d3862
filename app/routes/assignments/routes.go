package assignments

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/routes/auth"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/storage"
)

// SetupAssignmentRoutes registers assignment, submission and test/quiz
// endpoints.
func SetupAssignmentRoutes(app *fiber.App, db *sql.DB, codec auth.Codec, blobs storage.BlobService) {
	requireAuth := auth.RequireAuth(codec)
	requireTeacher := auth.RequireRole(models.RoleTeacher)
	requirePupil := auth.RequireRole(models.RolePupil)

	app.Post("/api/assignments", requireAuth, requireTeacher,
		func(c *fiber.Ctx) error { return CreateAssignmentAPI(c, db) })
	app.Get("/api/assignments", requireAuth,
		func(c *fiber.Ctx) error { return ListAssignmentsAPI(c, db) })
	app.Post("/api/assignments/submit", requireAuth, requirePupil,
		func(c *fiber.Ctx) error { return SubmitAssignmentAPI(c, db, blobs) })
	app.Patch("/api/assignments/grade", requireAuth, requireTeacher,
		func(c *fiber.Ctx) error { return GradeSubmissionAPI(c, db) })

	app.Post("/api/tests-quizzes", requireAuth, requireTeacher,
		func(c *fiber.Ctx) error { return CreateTestQuizAPI(c, db) })
	app.Get("/api/tests-quizzes", requireAuth,
		func(c *fiber.Ctx) error { return ListTestQuizzesAPI(c, db) })
	app.Put("/api/tests-quizzes/:id", requireAuth, requireTeacher,
		func(c *fiber.Ctx) error { return UpdateTestQuizAPI(c, db) })
	app.Delete("/api/tests-quizzes/:id", requireAuth, requireTeacher,
		func(c *fiber.Ctx) error { return DeleteTestQuizAPI(c, db) })
}
