package models

import "time"

// TimetableEntry is one slot on the weekly class timetable.
type TimetableEntry struct {
	ID        string    `json:"id"`
	TeacherID string    `json:"teacher_id"`
	Subject   string    `json:"subject"`
	ClassID   string    `json:"class_id"`
	Day       string    `json:"day"`
	Time      string    `json:"time"`
	CreatedAt time.Time `json:"created_at"`
}

// Class is a school class, e.g. "Primary 4".
type Class struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
