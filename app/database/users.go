package database

import (
	"database/sql"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
	"github.com/lib/pq"
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// failure, used by signup to detect UIN and email collisions.
func IsUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, uin, role, full_name, username, email, password, created_at, updated_at
			  FROM users WHERE email = $1`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.UIN, &user.Role, &user.FullName, &user.Username,
		&user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByUIN(db *sql.DB, uin string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, uin, role, full_name, username, email, password, created_at, updated_at
			  FROM users WHERE uin = $1`

	err := db.QueryRow(query, uin).Scan(
		&user.ID, &user.UIN, &user.Role, &user.FullName, &user.Username,
		&user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts the credential record and fills user.ID.
func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (uin, role, full_name, username, email, password)
			  VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return db.QueryRow(query,
		user.UIN, user.Role, user.FullName, user.Username, user.Email, user.Password,
	).Scan(&user.ID)
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

func GetUserIDByUIN(db *sql.DB, uin string) (string, error) {
	var id string
	err := db.QueryRow(`SELECT id FROM users WHERE uin = $1`, uin).Scan(&id)
	return id, err
}

func UserExistsByEmail(db *sql.DB, email string) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}
