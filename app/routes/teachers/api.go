package teachers

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/database"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/routes/auth"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/services"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/storage"
)

var validate = validator.New()

const uinInsertAttempts = 5

type signupForm struct {
	FullName          string `validate:"required"`
	Username          string `validate:"required"`
	Email             string `validate:"required,email"`
	Password          string `validate:"required,min=6"`
	ClassTaught       string `validate:"required"`
	YearsOfExperience int    `validate:"min=0"`
}

// SignupAPI registers a teacher account: credential record, teacher
// profile row and optional profile picture.
func SignupAPI(c *fiber.Ctx, db *sql.DB, blobs storage.BlobService) error {
	years, yearsErr := strconv.Atoi(strings.TrimSpace(c.FormValue("years_of_experience")))
	form := signupForm{
		FullName:          strings.TrimSpace(c.FormValue("full_name")),
		Username:          strings.TrimSpace(c.FormValue("username")),
		Email:             strings.TrimSpace(c.FormValue("email")),
		Password:          c.FormValue("password"),
		ClassTaught:       strings.TrimSpace(c.FormValue("class_taught")),
		YearsOfExperience: years,
	}
	if yearsErr != nil {
		return c.Status(400).JSON(fiber.Map{"error": "All fields are required"})
	}
	if err := validate.Struct(form); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "All fields are required"})
	}

	exists, err := database.UserExistsByEmail(db, form.Email)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if exists {
		return c.Status(400).JSON(fiber.Map{"error": "A user with this email already exists."})
	}

	hashed, err := auth.HashPassword(form.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.User{
		Role:     models.RoleTeacher,
		FullName: form.FullName,
		Username: form.Username,
		Email:    form.Email,
		Password: hashed,
	}
	for attempt := 0; ; attempt++ {
		user.UIN = services.GenerateTeacherUIN()
		err = database.CreateUser(db, user)
		if err == nil {
			break
		}
		if database.IsUniqueViolation(err) && attempt < uinInsertAttempts-1 {
			continue
		}
		if database.IsUniqueViolation(err) {
			return c.Status(409).JSON(fiber.Map{"error": "Could not allocate a unique UIN, try again."})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	profilePictureURL := ""
	if file, err := c.FormFile("profile_picture"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Profile picture upload failed"})
		}
		defer src.Close()

		key := fmt.Sprintf("profiles/%s%s", user.UIN, filepath.Ext(file.Filename))
		profilePictureURL, err = blobs.Upload(c.Context(), key, src, file.Header.Get("Content-Type"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Profile picture upload failed"})
		}
	}

	teacher := &models.Teacher{
		UserID:            user.ID,
		FullName:          form.FullName,
		Username:          form.Username,
		Email:             form.Email,
		ClassTaught:       form.ClassTaught,
		YearsOfExperience: form.YearsOfExperience,
		UIN:               user.UIN,
		ProfilePicture:    profilePictureURL,
		Password:          hashed,
	}
	if err := database.CreateTeacher(db, teacher); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Signup successful", "uin": user.UIN})
}

// DetailsAPI returns public teacher details for a UIN.
func DetailsAPI(c *fiber.Ctx, db *sql.DB) error {
	uin := c.Query("uin")
	if uin == "" {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized: No UIN provided"})
	}

	teacher, err := database.GetTeacherByUIN(db, uin)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Teacher not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	profilePicture := teacher.ProfilePicture
	if profilePicture == "" {
		profilePicture = "/default-profile.png"
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"uin":             teacher.UIN,
		"name":            teacher.FullName,
		"profile_picture": profilePicture,
	})
}

// ProfileAPI returns the full profile of the logged-in teacher.
func ProfileAPI(c *fiber.Ctx, db *sql.DB) error {
	claims := auth.SessionFromContext(c)

	teacher, err := database.GetTeacherByUIN(db, claims.UIN)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Teacher not found!"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(teacher)
}

type profileUpdateRequest struct {
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	ClassTaught       string `json:"class_taught"`
	YearsOfExperience int    `json:"years_of_experience"`
}

// UpdateProfileAPI updates the logged-in teacher's editable fields.
func UpdateProfileAPI(c *fiber.Ctx, db *sql.DB) error {
	claims := auth.SessionFromContext(c)

	var req profileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	teacher, err := database.GetTeacherByUIN(db, claims.UIN)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Teacher not found!"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	if req.FullName != "" {
		teacher.FullName = req.FullName
	}
	if req.Email != "" {
		teacher.Email = req.Email
	}
	if req.ClassTaught != "" {
		teacher.ClassTaught = req.ClassTaught
	}
	if req.YearsOfExperience > 0 {
		teacher.YearsOfExperience = req.YearsOfExperience
	}

	if err := database.UpdateTeacherProfile(db, teacher); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Profile updated successfully", "teacher": teacher})
}

// UploadProfilePictureAPI stores a new profile picture for the logged-in
// teacher and saves its public URL.
func UploadProfilePictureAPI(c *fiber.Ctx, db *sql.DB, blobs storage.BlobService) error {
	claims := auth.SessionFromContext(c)

	file, err := c.FormFile("file")
	if err != nil || file == nil {
		return c.Status(400).JSON(fiber.Map{"error": "No file uploaded"})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to read file"})
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	ext := filepath.Ext(file.Filename)
	if ext == "" {
		if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 {
			ext = "." + parts[1]
		}
	}
	key := fmt.Sprintf("profile_pictures/%s-profile%s", claims.UIN, ext)

	url, err := blobs.Upload(c.Context(), key, src, contentType)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.UpdateTeacherProfilePicture(db, claims.UIN, url); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "url": url})
}

// GetUserIDAPI resolves a UIN to the internal user id.
func GetUserIDAPI(c *fiber.Ctx, db *sql.DB) error {
	uin := c.Query("uin")
	if uin == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Missing UIN"})
	}

	id, err := database.GetUserIDByUIN(db, uin)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"success": true, "user_id": id})
}
