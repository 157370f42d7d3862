package blogs

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/routes/auth"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/storage"
)

// SetupBlogRoutes registers the blog endpoints. Reads are public;
// writes require a logged-in user.
func SetupBlogRoutes(app *fiber.App, db *sql.DB, codec auth.Codec, blobs storage.BlobService) {
	requireAuth := auth.RequireAuth(codec)

	app.Get("/api/blogs",
		func(c *fiber.Ctx) error { return ListBlogsAPI(c, db) })
	app.Get("/api/blogs/:id",
		func(c *fiber.Ctx) error { return GetBlogAPI(c, db) })
	app.Post("/api/blogs", requireAuth,
		func(c *fiber.Ctx) error { return CreateBlogAPI(c, db, blobs) })
	app.Put("/api/blogs/:id", requireAuth,
		func(c *fiber.Ctx) error { return UpdateBlogAPI(c, db, blobs) })
	app.Delete("/api/blogs", requireAuth,
		func(c *fiber.Ctx) error { return DeleteBlogAPI(c, db, blobs) })
}
