package auth

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes wires the session endpoints.
func SetupAuthRoutes(app *fiber.App, db *sql.DB, codec Codec) {
	app.Post("/api/pupils/login", func(c *fiber.Ctx) error { return LoginPupilAPI(c, db, codec) })
	app.Post("/api/teacher/login", func(c *fiber.Ctx) error { return LoginTeacherAPI(c, db, codec) })
	app.Post("/api/teacher/logout", LogoutAPI)
	app.Post("/api/pupils/logout", LogoutAPI)

	app.Get("/api/auth/session", func(c *fiber.Ctx) error { return SessionAPI(c, codec) })
	app.Get("/api/auth-check", func(c *fiber.Ctx) error { return AuthCheckAPI(c, codec) })

	app.Post("/api/teacher/forgot", func(c *fiber.Ctx) error { return ForgotPasswordAPI(c, db) })
	app.Post("/api/auth/change-password", RequireAuth(codec),
		func(c *fiber.Ctx) error { return ChangePasswordAPI(c, db) })
}
