package database

import (
	"database/sql"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
)

const pupilColumns = `id, user_id, full_name, phone_number, email, father_name, mother_name,
	guardian_name, guardian_contact, class, profile_picture, uin, password, created_at`

func scanPupil(row *sql.Row) (*models.Pupil, error) {
	p := &models.Pupil{}
	err := row.Scan(
		&p.ID, &p.UserID, &p.FullName, &p.PhoneNumber, &p.Email,
		&p.FatherName, &p.MotherName, &p.GuardianName, &p.GuardianContact,
		&p.Class, &p.ProfilePicture, &p.UIN, &p.Password, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func CreatePupil(db *sql.DB, p *models.Pupil) error {
	query := `INSERT INTO pupils (user_id, full_name, phone_number, email, father_name,
			  mother_name, guardian_name, guardian_contact, class, profile_picture, uin, password)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	return db.QueryRow(query,
		p.UserID, p.FullName, p.PhoneNumber, p.Email, p.FatherName,
		p.MotherName, p.GuardianName, p.GuardianContact, p.Class,
		p.ProfilePicture, p.UIN, p.Password,
	).Scan(&p.ID)
}

func GetPupilByUIN(db *sql.DB, uin string) (*models.Pupil, error) {
	return scanPupil(db.QueryRow(`SELECT `+pupilColumns+` FROM pupils WHERE uin = $1`, uin))
}

func GetPupilByEmail(db *sql.DB, email string) (*models.Pupil, error) {
	return scanPupil(db.QueryRow(`SELECT `+pupilColumns+` FROM pupils WHERE email = $1`, email))
}

func GetPupilByUserID(db *sql.DB, userID string) (*models.Pupil, error) {
	return scanPupil(db.QueryRow(`SELECT `+pupilColumns+` FROM pupils WHERE user_id = $1`, userID))
}

func GetPupils(db *sql.DB) ([]*models.Pupil, error) {
	rows, err := db.Query(`SELECT ` + pupilColumns + ` FROM pupils ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pupils []*models.Pupil
	for rows.Next() {
		p := &models.Pupil{}
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.FullName, &p.PhoneNumber, &p.Email,
			&p.FatherName, &p.MotherName, &p.GuardianName, &p.GuardianContact,
			&p.Class, &p.ProfilePicture, &p.UIN, &p.Password, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		pupils = append(pupils, p)
	}
	return pupils, rows.Err()
}

func UpdatePupilPassword(db *sql.DB, uin, hashedPassword string) error {
	_, err := db.Exec(`UPDATE pupils SET password = $1 WHERE uin = $2`, hashedPassword, uin)
	return err
}
