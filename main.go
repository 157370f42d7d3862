package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/config"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/database"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/routes/alerts"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/routes/assignments"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/routes/auth"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/routes/blogs"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/routes/exams"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/routes/messages"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/routes/pupils"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/routes/teachers"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/routes/timetable"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/services"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/storage"
)

func apiErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	config.Init()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migrations failed:", err)
	}

	blobs, err := storage.NewOSSBlobService(config.AppConfig.OSS)
	if err != nil {
		log.Fatal("Object storage init failed:", err)
	}

	codec := auth.NewCodec(config.AppConfig.SessionSecret)

	services.StartScheduler(db)

	app := fiber.New(fiber.Config{
		ErrorHandler: apiErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowOriginsFunc: func(origin string) bool { return true },
	}))

	auth.SetupAuthRoutes(app, db, codec)
	pupils.SetupPupilRoutes(app, db, codec, blobs)
	teachers.SetupTeacherRoutes(app, db, codec, blobs)
	exams.SetupExamRoutes(app, db, codec)
	blogs.SetupBlogRoutes(app, db, codec, blobs)
	alerts.SetupAlertRoutes(app, db, codec)
	assignments.SetupAssignmentRoutes(app, db, codec, blobs)
	messages.SetupMessageRoutes(app, db, codec)
	timetable.SetupTimetableRoutes(app, db, codec)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	log.Println("Server starting on port " + config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
