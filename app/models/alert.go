package models

import "time"

// Alert is a notice shown to pupils between StartTime and EndTime.
type Alert struct {
	ID        string    `json:"id"`
	TeacherID string    `json:"teacher_id"`
	Message   string    `json:"message"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}
