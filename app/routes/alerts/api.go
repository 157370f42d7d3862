package alerts

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/database"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
)

var validate = validator.New()

type alertRequest struct {
	TeacherID string    `json:"teacher_id"`
	Message   string    `json:"message" validate:"required"`
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
}

// CreateAlertAPI publishes a timed notice to pupils.
func CreateAlertAPI(c *fiber.Ctx, db *sql.DB) error {
	var req alertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	alert := &models.Alert{
		TeacherID: req.TeacherID,
		Message:   req.Message,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := database.CreateAlert(db, alert); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "alert": alert})
}

// ListAlertsAPI returns alerts. ?active=true keeps only those whose
// window has not closed yet.
func ListAlertsAPI(c *fiber.Ctx, db *sql.DB) error {
	activeOnly := c.Query("active") == "true"
	alerts, err := database.GetAlerts(db, activeOnly)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if alerts == nil {
		alerts = []*models.Alert{}
	}
	return c.JSON(alerts)
}

// UpdateAlertAPI edits an alert's message and window.
func UpdateAlertAPI(c *fiber.Ctx, db *sql.DB) error {
	var req alertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	alert := &models.Alert{
		ID:        c.Params("id"),
		Message:   req.Message,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := database.UpdateAlert(db, alert); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteAlertAPI removes an alert.
func DeleteAlertAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteAlert(db, c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}
