package database

import (
	"database/sql"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
)

func CreateMessage(db *sql.DB, m *models.Message) error {
	query := `INSERT INTO messages (teacher_id, pupil_id, message)
			  VALUES ($1, $2, $3) RETURNING id, created_at`
	return db.QueryRow(query, m.TeacherID, m.PupilID, m.Message).Scan(&m.ID, &m.CreatedAt)
}

func GetMessages(db *sql.DB) ([]*models.Message, error) {
	rows, err := db.Query(`SELECT id, teacher_id, pupil_id, message, created_at
						   FROM messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		m := &models.Message{}
		if err := rows.Scan(&m.ID, &m.TeacherID, &m.PupilID, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
