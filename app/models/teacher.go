package models

import "time"

// Teacher is the teacher profile row linked to a user credential record.
type Teacher struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	FullName          string    `json:"full_name"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	ClassTaught       string    `json:"class_taught"`
	YearsOfExperience int       `json:"years_of_experience"`
	UIN               string    `json:"uin"`
	ProfilePicture    string    `json:"profile_picture,omitempty"`
	Password          string    `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
}
