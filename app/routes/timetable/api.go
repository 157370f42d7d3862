package timetable

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/database"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
)

type entryRequest struct {
	TeacherID string `json:"teacher_id"`
	Subject   string `json:"subject"`
	ClassID   string `json:"class_id"`
	Day       string `json:"day"`
	Time      string `json:"time"`
}

// CreateEntryAPI adds one slot to the weekly timetable. All five fields
// are required.
func CreateEntryAPI(c *fiber.Ctx, db *sql.DB) error {
	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(req.TeacherID) == "" ||
		strings.TrimSpace(req.Subject) == "" ||
		strings.TrimSpace(req.ClassID) == "" ||
		strings.TrimSpace(req.Day) == "" ||
		strings.TrimSpace(req.Time) == "" {
		return c.Status(400).JSON(fiber.Map{"error": "All fields are required"})
	}

	entry := &models.TimetableEntry{
		TeacherID: req.TeacherID,
		Subject:   req.Subject,
		ClassID:   req.ClassID,
		Day:       req.Day,
		Time:      req.Time,
	}
	if err := database.CreateTimetableEntry(db, entry); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "data": entry})
}

// ListTimetableAPI returns every timetable slot, always as an array.
func ListTimetableAPI(c *fiber.Ctx, db *sql.DB) error {
	entries, err := database.GetTimetable(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if entries == nil {
		entries = []*models.TimetableEntry{}
	}
	return c.JSON(entries)
}

// ListClassesAPI lists the school's classes by id and name.
func ListClassesAPI(c *fiber.Ctx, db *sql.DB) error {
	classes, err := database.GetClasses(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if classes == nil {
		classes = []*models.Class{}
	}
	return c.JSON(classes)
}
