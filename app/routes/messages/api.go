package messages

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/database"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
)

type messageRequest struct {
	TeacherID string `json:"teacher_id"`
	PupilID   string `json:"pupil_id"`
	Message   string `json:"message"`
}

// SendMessageAPI records a note from a teacher to a pupil.
func SendMessageAPI(c *fiber.Ctx, db *sql.DB) error {
	var req messageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.TeacherID == "" || req.PupilID == "" || strings.TrimSpace(req.Message) == "" {
		return c.Status(400).JSON(fiber.Map{"error": "teacher_id, pupil_id and message are required"})
	}

	msg := &models.Message{
		TeacherID: req.TeacherID,
		PupilID:   req.PupilID,
		Message:   req.Message,
	}
	if err := database.CreateMessage(db, msg); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "data": msg})
}

// ListMessagesAPI lists all messages, newest first.
func ListMessagesAPI(c *fiber.Ctx, db *sql.DB) error {
	msgs, err := database.GetMessages(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if msgs == nil {
		msgs = []*models.Message{}
	}
	return c.JSON(msgs)
}
