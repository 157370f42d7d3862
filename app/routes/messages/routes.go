package messages

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/routes/auth"
)

// SetupMessageRoutes registers the messaging endpoints.
func SetupMessageRoutes(app *fiber.App, db *sql.DB, codec auth.Codec) {
	requireAuth := auth.RequireAuth(codec)

	app.Post("/api/messages", requireAuth,
		func(c *fiber.Ctx) error { return SendMessageAPI(c, db) })
	app.Get("/api/messages", requireAuth,
		func(c *fiber.Ctx) error { return ListMessagesAPI(c, db) })
}
