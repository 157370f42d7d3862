package models

import "time"

// Pupil is the pupil profile row linked to a user credential record.
type Pupil struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	FullName        string    `json:"full_name"`
	PhoneNumber     string    `json:"phone_number,omitempty"`
	Email           string    `json:"email"`
	FatherName      string    `json:"father_name,omitempty"`
	MotherName      string    `json:"mother_name,omitempty"`
	GuardianName    string    `json:"guardian_name,omitempty"`
	GuardianContact string    `json:"guardian_contact,omitempty"`
	Class           string    `json:"class"`
	ProfilePicture  string    `json:"profile_picture,omitempty"`
	UIN             string    `json:"uin"`
	Password        string    `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
}
