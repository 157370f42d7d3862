package pupils

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/routes/auth"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/storage"
)

// SetupPupilRoutes wires pupil signup and profile endpoints.
func SetupPupilRoutes(app *fiber.App, db *sql.DB, codec auth.Codec, blobs storage.BlobService) {
	app.Post("/api/pupils/signup", func(c *fiber.Ctx) error { return SignupAPI(c, db, blobs) })
	app.Get("/api/pupils/details", func(c *fiber.Ctx) error { return DetailsAPI(c, db) })
	app.Get("/api/pupils", auth.RequireAuth(codec), func(c *fiber.Ctx) error { return ListAPI(c, db) })
}
