package exams

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/database"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/routes/auth"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/services"
)

var validate = validator.New()

type createExamRequest struct {
	ExamTitle string              `json:"examTitle" validate:"required"`
	Subject   string              `json:"subject" validate:"required"`
	ClassID   string              `json:"classId"`
	TeacherID string              `json:"teacherId"`
	Duration  int                 `json:"duration" validate:"required,min=1"`
	Questions models.QuestionList `json:"questions" validate:"required,min=1,dive"`
}

// CreateExamAPI stores a new teacher-authored question set.
func CreateExamAPI(c *fiber.Ctx, db *sql.DB) error {
	var req createExamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	exam := &models.CBTExam{
		ExamTitle: req.ExamTitle,
		Subject:   req.Subject,
		ClassID:   req.ClassID,
		TeacherID: req.TeacherID,
		Duration:  req.Duration,
		Questions: req.Questions,
	}
	if err := database.CreateCBTExam(db, exam); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "data": exam})
}

// ListExamsAPI returns every exam.
func ListExamsAPI(c *fiber.Ctx, db *sql.DB) error {
	exams, err := database.GetCBTExams(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if exams == nil {
		exams = []*models.CBTExam{}
	}
	return c.JSON(exams)
}

type updateExamRequest struct {
	ID        string              `json:"id" validate:"required"`
	ExamTitle string              `json:"exam_title" validate:"required"`
	Subject   string              `json:"subject" validate:"required"`
	Duration  int                 `json:"duration" validate:"required,min=1"`
	Questions models.QuestionList `json:"questions" validate:"required,min=1,dive"`
}

// UpdateExamAPI replaces an exam's title, subject, duration and
// questions. Last write wins when teachers race.
func UpdateExamAPI(c *fiber.Ctx, db *sql.DB) error {
	var req updateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	exam := &models.CBTExam{
		ID:        req.ID,
		ExamTitle: req.ExamTitle,
		Subject:   req.Subject,
		Duration:  req.Duration,
		Questions: req.Questions,
	}
	if err := database.UpdateCBTExam(db, exam); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteExamAPI removes an exam; attempts and sessions go with it.
func DeleteExamAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Missing exam id"})
	}
	if err := database.DeleteCBTExam(db, id); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

// StartExamAPI opens (or resumes) the pupil's session for an exam. The
// deadline is fixed at first start; starting again returns the same
// session without resetting the clock.
func StartExamAPI(c *fiber.Ctx, db *sql.DB) error {
	claims := auth.SessionFromContext(c)
	examID := c.Params("id")

	exam, err := database.GetCBTExam(db, examID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Exam not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	expires := time.Now().Add(time.Duration(exam.Duration) * time.Minute)
	session, err := database.StartExamSession(db, exam.ID, claims.UIN, expires)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if session.Submitted {
		return c.Status(409).JSON(fiber.Map{"error": "Exam already submitted"})
	}

	return c.JSON(fiber.Map{
		"exam":    exam,
		"session": session,
	})
}

type progressRequest struct {
	Answers models.AnswerMap `json:"answers"`
}

// SaveProgressAPI overwrites the draft answers on the open session, so a
// reconnecting client can restore where it left off.
func SaveProgressAPI(c *fiber.Ctx, db *sql.DB) error {
	claims := auth.SessionFromContext(c)
	examID := c.Params("id")

	var req progressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	err := database.SaveSessionAnswers(db, examID, claims.UIN, req.Answers)
	if err == sql.ErrNoRows {
		session, serr := database.GetExamSession(db, examID, claims.UIN)
		if serr == nil && session.Submitted {
			return c.Status(409).JSON(fiber.Map{"error": "Exam already submitted"})
		}
		return c.Status(404).JSON(fiber.Map{"error": "No open exam session"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true})
}

type submitRequest struct {
	ExamID  string           `json:"examId"`
	Answers models.AnswerMap `json:"answers"`
}

// SubmitExamAPI grades the submitted answers and records the attempt.
// Submission is idempotent per pupil and exam: a double-click or a race
// with the auto-submit reaper yields one attempt, and the stored score
// is returned either way.
func SubmitExamAPI(c *fiber.Ctx, db *sql.DB) error {
	claims := auth.SessionFromContext(c)

	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.ExamID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Missing exam id"})
	}

	exam, err := database.GetCBTExam(db, req.ExamID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Exam not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	// Close the session if one is open. Not an error when the pupil
	// never called start or the reaper won the race; the attempt insert
	// below is the real idempotence gate.
	if err := database.CloseExamSession(db, exam.ID, claims.UIN); err != nil && err != sql.ErrNoRows {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	attempt := &models.ExamAttempt{
		ExamID:   exam.ID,
		PupilUIN: claims.UIN,
		Answers:  req.Answers,
		Score:    services.GradeExam(exam.Questions, req.Answers),
	}
	stored, err := database.CreateExamAttempt(db, attempt)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "score": stored.Score})
}

// MyResultsAPI lists the logged-in pupil's graded attempts.
func MyResultsAPI(c *fiber.Ctx, db *sql.DB) error {
	claims := auth.SessionFromContext(c)

	attempts, err := database.GetExamAttemptsByPupil(db, claims.UIN)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if attempts == nil {
		attempts = []*models.ExamAttempt{}
	}
	return c.JSON(attempts)
}

type resultRequest struct {
	TeacherID string `json:"teacher_id" validate:"required"`
	PupilID   string `json:"pupil_id" validate:"required"`
	Subject   string `json:"subject" validate:"required"`
	Score     int    `json:"score"`
}

// CreateResultAPI records a manually entered exam result.
func CreateResultAPI(c *fiber.Ctx, db *sql.DB) error {
	var req resultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	result := &models.ExamResult{
		TeacherID: req.TeacherID,
		PupilID:   req.PupilID,
		Subject:   req.Subject,
		Score:     req.Score,
	}
	if err := database.CreateExamResult(db, result); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "data": result})
}

// ListResultsAPI lists all manually entered exam results.
func ListResultsAPI(c *fiber.Ctx, db *sql.DB) error {
	results, err := database.GetExamResults(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if results == nil {
		results = []*models.ExamResult{}
	}
	return c.JSON(results)
}
