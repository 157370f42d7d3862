package database

import (
	"database/sql"
	"time"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
)

func CreateAlert(db *sql.DB, a *models.Alert) error {
	query := `INSERT INTO alerts (teacher_id, message, start_time, end_time)
			  VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	return db.QueryRow(query, a.TeacherID, a.Message, a.StartTime, a.EndTime).Scan(&a.ID, &a.CreatedAt)
}

// GetAlerts lists alerts newest first. When activeOnly is set, alerts
// whose end time has passed are filtered out.
func GetAlerts(db *sql.DB, activeOnly bool) ([]*models.Alert, error) {
	query := `SELECT id, teacher_id, message, start_time, end_time, created_at FROM alerts`
	args := []interface{}{}
	if activeOnly {
		query += ` WHERE end_time >= $1`
		args = append(args, time.Now())
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []*models.Alert
	for rows.Next() {
		a := &models.Alert{}
		if err := rows.Scan(&a.ID, &a.TeacherID, &a.Message, &a.StartTime, &a.EndTime, &a.CreatedAt); err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

func UpdateAlert(db *sql.DB, a *models.Alert) error {
	query := `UPDATE alerts SET message = $1, start_time = $2, end_time = $3 WHERE id = $4`
	_, err := db.Exec(query, a.Message, a.StartTime, a.EndTime, a.ID)
	return err
}

func DeleteAlert(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM alerts WHERE id = $1`, id)
	return err
}
