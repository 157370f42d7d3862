package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Question is one multiple-choice question in a CBT exam. Options are
// ordered; exactly one option string is the correct answer.
type Question struct {
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"required,min=2"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required"`
}

// QuestionList is stored as a JSONB column on cbt_exams.
type QuestionList []Question

func (q QuestionList) Value() (driver.Value, error) {
	return json.Marshal(q)
}

func (q *QuestionList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, q)
	case string:
		return json.Unmarshal([]byte(v), q)
	case nil:
		*q = nil
		return nil
	}
	return fmt.Errorf("unsupported type for QuestionList: %T", src)
}

// AnswerMap holds submitted answers keyed by question index.
type AnswerMap map[int]string

func (a AnswerMap) Value() (driver.Value, error) {
	if a == nil {
		a = AnswerMap{}
	}
	return json.Marshal(a)
}

func (a *AnswerMap) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	case nil:
		*a = nil
		return nil
	}
	return fmt.Errorf("unsupported type for AnswerMap: %T", src)
}

// CBTExam is a teacher-authored question set delivered as a timed exam.
type CBTExam struct {
	ID        string       `json:"id"`
	ExamTitle string       `json:"exam_title"`
	Subject   string       `json:"subject"`
	ClassID   string       `json:"class_id"`
	TeacherID string       `json:"teacher_id"`
	Duration  int          `json:"duration"` // minutes
	Questions QuestionList `json:"questions"`
	CreatedAt time.Time    `json:"created_at"`
}

// ExamSession tracks one pupil's in-progress attempt at an exam. Draft
// answers are overwritten on every save; Submitted flips exactly once,
// either on explicit submission or when the reaper finds the session
// past its deadline.
type ExamSession struct {
	ID        string    `json:"id"`
	ExamID    string    `json:"exam_id"`
	PupilUIN  string    `json:"pupil_uin"`
	StartedAt time.Time `json:"started_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Answers   AnswerMap `json:"answers"`
	Submitted bool      `json:"submitted"`
}

// ExamAttempt is the graded record written at submission.
type ExamAttempt struct {
	ID          string    `json:"id"`
	ExamID      string    `json:"exam_id"`
	PupilUIN    string    `json:"pupil_uin"`
	Answers     AnswerMap `json:"answers"`
	Score       int       `json:"score"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ExamResult is a manually entered result published by a teacher.
type ExamResult struct {
	ID        string    `json:"id"`
	TeacherID string    `json:"teacher_id"`
	PupilID   string    `json:"pupil_id"`
	Subject   string    `json:"subject"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
