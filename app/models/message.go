package models

import "time"

// Message is a note between a teacher and a pupil.
type Message struct {
	ID        string    `json:"id"`
	TeacherID string    `json:"teacher_id"`
	PupilID   string    `json:"pupil_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
