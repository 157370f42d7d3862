package models

import "time"

// Assignment is homework set by a teacher for a class.
type Assignment struct {
	ID          string    `json:"id"`
	TeacherID   string    `json:"teacher_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	ClassID     string    `json:"class_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Submission is a pupil's answer to an assignment. Grade and Feedback
// stay empty until a teacher marks it.
type Submission struct {
	ID             string    `json:"id"`
	AssignmentID   string    `json:"assignment_id"`
	PupilID        string    `json:"pupil_id,omitempty"`
	SubmittedAt    time.Time `json:"submitted_at"`
	FileURL        string    `json:"file_url,omitempty"`
	TextSubmission string    `json:"text_submission,omitempty"`
	Grade          string    `json:"grade,omitempty"`
	Feedback       string    `json:"feedback,omitempty"`
}

// TestQuiz is a scheduled test or quiz announcement.
type TestQuiz struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	ClassID     string    `json:"class_id"`
	CreatedAt   time.Time `json:"created_at"`
}
