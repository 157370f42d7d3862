package auth

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/database"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
)

type loginRequest struct {
	UIN      string `json:"uin"`
	Password string `json:"password"`
}

// LoginPupilAPI checks a pupil's UIN and password and issues the session
// cookie. Unknown UIN and wrong password get the same answer.
func LoginPupilAPI(c *fiber.Ctx, db *sql.DB, codec Codec) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.UIN == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "UIN and Password are required!"})
	}

	pupil, err := database.GetPupilByUIN(db, req.UIN)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid UIN or Password!"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	if !CheckPasswordHash(req.Password, pupil.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid UIN or Password!"})
	}

	token, err := codec.Issue(Claims{
		UIN:  pupil.UIN,
		Role: models.RolePupil,
		User: map[string]string{"name": pupil.FullName, "email": pupil.Email},
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create session"})
	}
	SetSessionCookie(c, token)

	return c.JSON(fiber.Map{
		"message": "Login successful!",
		"pupil": fiber.Map{
			"id":    pupil.ID,
			"name":  pupil.FullName,
			"email": pupil.Email,
		},
	})
}

// LoginTeacherAPI is the teacher variant of LoginPupilAPI.
func LoginTeacherAPI(c *fiber.Ctx, db *sql.DB, codec Codec) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.UIN == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "UIN and Password are required!"})
	}

	teacher, err := database.GetTeacherByUIN(db, req.UIN)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid UIN or Password!"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	if !CheckPasswordHash(req.Password, teacher.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid UIN or Password!"})
	}

	token, err := codec.Issue(Claims{
		UIN:  teacher.UIN,
		Role: models.RoleTeacher,
		User: map[string]string{"email": teacher.Email},
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create session"})
	}
	SetSessionCookie(c, token)

	return c.JSON(fiber.Map{
		"message": "Login successful!",
		"teacher": fiber.Map{
			"id":    teacher.ID,
			"name":  teacher.FullName,
			"email": teacher.Email,
		},
	})
}

// LogoutAPI clears the session cookie. There is no server-side session
// state, so this always succeeds.
func LogoutAPI(c *fiber.Ctx) error {
	ClearSessionCookie(c)
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// SessionAPI returns the claims embedded in the session cookie.
func SessionAPI(c *fiber.Ctx, codec Codec) error {
	token := c.Cookies(SessionCookieName)
	if token == "" {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	claims, err := codec.Verify(token)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid session"})
	}
	if claims.UIN == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Session missing UIN"})
	}

	return c.JSON(fiber.Map{"session": claims})
}

// AuthCheckAPI is a lightweight probe used by pages to decide whether to
// redirect to login.
func AuthCheckAPI(c *fiber.Ctx, codec Codec) error {
	token := c.Cookies(SessionCookieName)
	if token == "" {
		return c.Status(401).JSON(fiber.Map{"authenticated": false})
	}
	claims, err := codec.Verify(token)
	if err != nil || claims.UIN == "" {
		return c.Status(401).JSON(fiber.Map{"authenticated": false})
	}
	return c.JSON(fiber.Map{"authenticated": true, "uin": claims.UIN, "role": claims.Role})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePasswordAPI rotates the password for the logged-in account,
// updating both the credential record and the role profile row.
func ChangePasswordAPI(c *fiber.Ctx, db *sql.DB) error {
	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Current and new password are required"})
	}

	claims := SessionFromContext(c)
	user, err := database.GetUserByUIN(db, claims.UIN)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !CheckPasswordHash(req.CurrentPassword, user.Password) {
		return c.Status(400).JSON(fiber.Map{"error": "Current password is incorrect"})
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	if err := database.UpdateUserPassword(db, user.ID, hashed); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update password"})
	}
	switch user.Role {
	case models.RoleTeacher:
		err = database.UpdateTeacherPasswordByUIN(db, user.UIN, hashed)
	case models.RolePupil:
		err = database.UpdatePupilPassword(db, user.UIN, hashed)
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update password"})
	}

	return c.JSON(fiber.Map{"message": "Password changed successfully"})
}

type forgotPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password,omitempty"`
}

// ForgotPasswordAPI verifies a teacher email and, when a new password is
// supplied, rotates the stored hash. Reset email delivery is handled
// elsewhere.
func ForgotPasswordAPI(c *fiber.Ctx, db *sql.DB) error {
	var req forgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Email == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Email is required!"})
	}

	teacher, err := database.GetTeacherByEmail(db, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Email not found!"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if req.NewPassword == "" {
		return c.JSON(fiber.Map{"message": "Email verified", "user_found": true})
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}
	if err := database.UpdateTeacherPassword(db, teacher.Email, hashed); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update password"})
	}
	if user, err := database.GetUserByEmail(db, teacher.Email); err == nil {
		_ = database.UpdateUserPassword(db, user.ID, hashed)
	}

	return c.JSON(fiber.Map{"message": "Password reset successfully"})
}
