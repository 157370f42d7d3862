package models

import "time"

// Role values stored on a user credential record.
const (
	RoleTeacher = "teacher"
	RolePupil   = "pupil"
)

// User is the shared credential record. Pupils and teachers both get one,
// plus a role-specific profile row linked by UserID.
type User struct {
	ID        string    `json:"id"`
	UIN       string    `json:"uin"`
	Role      string    `json:"role"`
	FullName  string    `json:"full_name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
