package teachers

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/routes/auth"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/storage"
)

// SetupTeacherRoutes wires teacher signup and profile endpoints.
func SetupTeacherRoutes(app *fiber.App, db *sql.DB, codec auth.Codec, blobs storage.BlobService) {
	app.Post("/api/teacher/signup", func(c *fiber.Ctx) error { return SignupAPI(c, db, blobs) })
	app.Get("/api/teacher/details", func(c *fiber.Ctx) error { return DetailsAPI(c, db) })
	app.Get("/api/teacher/get-user-id", func(c *fiber.Ctx) error { return GetUserIDAPI(c, db) })

	requireAuth := auth.RequireAuth(codec)
	requireTeacher := auth.RequireRole(models.RoleTeacher)
	app.Get("/api/teacher/profile", requireAuth, requireTeacher,
		func(c *fiber.Ctx) error { return ProfileAPI(c, db) })
	app.Put("/api/teacher/profile", requireAuth, requireTeacher,
		func(c *fiber.Ctx) error { return UpdateProfileAPI(c, db) })
	app.Post("/api/teacher/upload-profile-picture", requireAuth, requireTeacher,
		func(c *fiber.Ctx) error { return UploadProfilePictureAPI(c, db, blobs) })
}
