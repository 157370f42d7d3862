package assignments

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/database"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/routes/auth"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/storage"
)

var validate = validator.New()

type assignmentRequest struct {
	TeacherID   string    `json:"teacher_id"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	ClassID     string    `json:"class_id" validate:"required"`
}

// CreateAssignmentAPI sets homework for a class.
func CreateAssignmentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req assignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	a := &models.Assignment{
		TeacherID:   req.TeacherID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		ClassID:     req.ClassID,
	}
	if err := database.CreateAssignment(db, a); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "data": a})
}

// ListAssignmentsAPI returns every assignment together with every
// submission, so the teacher view can join them client side.
func ListAssignmentsAPI(c *fiber.Ctx, db *sql.DB) error {
	assignments, err := database.GetAssignments(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	submissions, err := database.GetSubmissions(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if assignments == nil {
		assignments = []*models.Assignment{}
	}
	if submissions == nil {
		submissions = []*models.Submission{}
	}
	return c.JSON(fiber.Map{
		"assignments": assignments,
		"submissions": submissions,
	})
}

// SubmitAssignmentAPI records a pupil's answer, text or uploaded file
// or both.
func SubmitAssignmentAPI(c *fiber.Ctx, db *sql.DB, blobs storage.BlobService) error {
	claims := auth.SessionFromContext(c)

	assignmentID := strings.TrimSpace(c.FormValue("assignment_id"))
	text := strings.TrimSpace(c.FormValue("text_submission"))
	if assignmentID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Missing assignment id"})
	}

	fileURL := ""
	if file, err := c.FormFile("file"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to read file"})
		}
		defer src.Close()

		ext := filepath.Ext(file.Filename)
		key := fmt.Sprintf("submissions/%s_%s_%s%s", assignmentID, claims.UIN, uuid.NewString(), ext)
		fileURL, err = blobs.Upload(c.Context(), key, src, file.Header.Get("Content-Type"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
	}

	if text == "" && fileURL == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Submission needs text or a file"})
	}

	s := &models.Submission{
		AssignmentID:   assignmentID,
		PupilID:        claims.UIN,
		FileURL:        fileURL,
		TextSubmission: text,
	}
	if err := database.CreateSubmission(db, s); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "data": s})
}

type gradeRequest struct {
	SubmissionID string `json:"submission_id" validate:"required"`
	Grade        string `json:"grade" validate:"required"`
	Feedback     string `json:"feedback"`
}

// GradeSubmissionAPI marks one submission.
func GradeSubmissionAPI(c *fiber.Ctx, db *sql.DB) error {
	var req gradeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	err := database.GradeSubmission(db, req.SubmissionID, req.Grade, req.Feedback)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Submission not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

type testQuizRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	ClassID     string    `json:"class_id" validate:"required"`
}

// CreateTestQuizAPI schedules a test or quiz announcement.
func CreateTestQuizAPI(c *fiber.Ctx, db *sql.DB) error {
	var req testQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	t := &models.TestQuiz{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		ClassID:     req.ClassID,
	}
	if err := database.CreateTestQuiz(db, t); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "data": t})
}

// ListTestQuizzesAPI lists scheduled tests and quizzes.
func ListTestQuizzesAPI(c *fiber.Ctx, db *sql.DB) error {
	quizzes, err := database.GetTestQuizzes(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if quizzes == nil {
		quizzes = []*models.TestQuiz{}
	}
	return c.JSON(quizzes)
}

// UpdateTestQuizAPI edits a scheduled test or quiz.
func UpdateTestQuizAPI(c *fiber.Ctx, db *sql.DB) error {
	var req testQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	t := &models.TestQuiz{
		ID:          c.Params("id"),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		ClassID:     req.ClassID,
	}
	if err := database.UpdateTestQuiz(db, t); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteTestQuizAPI removes a scheduled test or quiz.
func DeleteTestQuizAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteTestQuiz(db, c.Params("id")); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}
