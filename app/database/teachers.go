package database

import (
	"database/sql"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
)

const teacherColumns = `id, user_id, full_name, username, email, class_taught,
	years_of_experience, uin, profile_picture, password, created_at`

func scanTeacher(row *sql.Row) (*models.Teacher, error) {
	t := &models.Teacher{}
	err := row.Scan(
		&t.ID, &t.UserID, &t.FullName, &t.Username, &t.Email, &t.ClassTaught,
		&t.YearsOfExperience, &t.UIN, &t.ProfilePicture, &t.Password, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func CreateTeacher(db *sql.DB, t *models.Teacher) error {
	query := `INSERT INTO teachers (user_id, full_name, username, email, class_taught,
			  years_of_experience, uin, profile_picture, password)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return db.QueryRow(query,
		t.UserID, t.FullName, t.Username, t.Email, t.ClassTaught,
		t.YearsOfExperience, t.UIN, t.ProfilePicture, t.Password,
	).Scan(&t.ID)
}

func GetTeacherByUIN(db *sql.DB, uin string) (*models.Teacher, error) {
	return scanTeacher(db.QueryRow(`SELECT `+teacherColumns+` FROM teachers WHERE uin = $1`, uin))
}

func GetTeacherByEmail(db *sql.DB, email string) (*models.Teacher, error) {
	return scanTeacher(db.QueryRow(`SELECT `+teacherColumns+` FROM teachers WHERE email = $1`, email))
}

func UpdateTeacherProfile(db *sql.DB, t *models.Teacher) error {
	query := `UPDATE teachers SET full_name = $1, email = $2, class_taught = $3,
			  years_of_experience = $4 WHERE uin = $5`
	_, err := db.Exec(query, t.FullName, t.Email, t.ClassTaught, t.YearsOfExperience, t.UIN)
	return err
}

func UpdateTeacherProfilePicture(db *sql.DB, uin, pictureURL string) error {
	_, err := db.Exec(`UPDATE teachers SET profile_picture = $1 WHERE uin = $2`, pictureURL, uin)
	return err
}

func UpdateTeacherPassword(db *sql.DB, email, hashedPassword string) error {
	_, err := db.Exec(`UPDATE teachers SET password = $1 WHERE email = $2`, hashedPassword, email)
	return err
}

func UpdateTeacherPasswordByUIN(db *sql.DB, uin, hashedPassword string) error {
	_, err := db.Exec(`UPDATE teachers SET password = $1 WHERE uin = $2`, hashedPassword, uin)
	return err
}
