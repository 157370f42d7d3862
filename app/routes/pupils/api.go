package pupils

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/database"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/routes/auth"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/services"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/storage"
)

var validate = validator.New()

// The insert is retried this many times when the generated UIN collides
// with an existing one.
const uinInsertAttempts = 5

type signupForm struct {
	FullName        string `validate:"required"`
	PhoneNumber     string
	Email           string `validate:"required,email"`
	FatherName      string
	MotherName      string
	GuardianName    string
	GuardianContact string
	ClassLevel      string `validate:"required"`
	Password        string `validate:"required,min=6"`
}

// SignupAPI registers a pupil: credential record plus profile row, with
// an optional profile picture pushed to the object store. The two
// inserts are independent writes; a failed second insert leaves the
// credential record in place.
func SignupAPI(c *fiber.Ctx, db *sql.DB, blobs storage.BlobService) error {
	form := signupForm{
		FullName:        strings.TrimSpace(c.FormValue("full_name")),
		PhoneNumber:     strings.TrimSpace(c.FormValue("phone_number")),
		Email:           strings.TrimSpace(c.FormValue("email")),
		FatherName:      strings.TrimSpace(c.FormValue("father_name")),
		MotherName:      strings.TrimSpace(c.FormValue("mother_name")),
		GuardianName:    strings.TrimSpace(c.FormValue("guardian_name")),
		GuardianContact: strings.TrimSpace(c.FormValue("guardian_contact")),
		ClassLevel:      strings.TrimSpace(c.FormValue("classLevel")),
		Password:        c.FormValue("password"),
	}
	if err := validate.Struct(form); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Missing required fields."})
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
		Role:     models.RolePupil,
		FullName: form.FullName,
		Username: strings.ToLower(strings.ReplaceAll(form.FullName, " ", "")),
		Email:    form.Email,
		Password: hashed,
	}
	for attempt := 0; ; attempt++ {
		user.UIN = services.GenerateUIN(form.ClassLevel)
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
			return c.Status(500).JSON(fiber.Map{"error": "Failed to read profile picture"})
		}
		defer src.Close()

		ext := filepath.Ext(file.Filename)
		key := fmt.Sprintf("profile_pictures/%s_%d%s", user.ID, time.Now().UnixMilli(), ext)
		contentType := file.Header.Get("Content-Type")
		profilePictureURL, err = blobs.Upload(c.Context(), key, src, contentType)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
	}

	pupil := &models.Pupil{
		UserID:          user.ID,
		FullName:        form.FullName,
		PhoneNumber:     form.PhoneNumber,
		Email:           form.Email,
		FatherName:      form.FatherName,
		MotherName:      form.MotherName,
		GuardianName:    form.GuardianName,
		GuardianContact: form.GuardianContact,
		Class:           form.ClassLevel,
		ProfilePicture:  profilePictureURL,
		UIN:             user.UIN,
		Password:        hashed,
	}
	if err := database.CreatePupil(db, pupil); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Signup successful", "uin": user.UIN})
}

// DetailsAPI returns a pupil's profile looked up by email or user id.
func DetailsAPI(c *fiber.Ctx, db *sql.DB) error {
	email := c.Query("email")
	userID := c.Query("userId")
	if email == "" && userID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Email or userId is required."})
	}

	var (
		pupil *models.Pupil
		err   error
	)
	if email != "" {
		pupil, err = database.GetPupilByEmail(db, email)
	} else {
		pupil, err = database.GetPupilByUserID(db, userID)
	}
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Pupil not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	profilePicture := pupil.ProfilePicture
	if profilePicture == "" {
		profilePicture = "/default-profile.png"
	}

	return c.JSON(fiber.Map{
		"full_name":       pupil.FullName,
		"profile_picture": profilePicture,
		"email":           pupil.Email,
		"class":           pupil.Class,
		"uin":             pupil.UIN,
	})
}

// ListAPI returns all pupils, newest first.
func ListAPI(c *fiber.Ctx, db *sql.DB) error {
	pupils, err := database.GetPupils(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	if pupils == nil {
		pupils = []*models.Pupil{}
	}
	return c.JSON(pupils)
}
