package database

import (
	"database/sql"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
)

func CreateTimetableEntry(db *sql.DB, e *models.TimetableEntry) error {
	query := `INSERT INTO timetable (teacher_id, subject, class_id, day, time)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	return db.QueryRow(query, e.TeacherID, e.Subject, e.ClassID, e.Day, e.Time).
		Scan(&e.ID, &e.CreatedAt)
}

func GetTimetable(db *sql.DB) ([]*models.TimetableEntry, error) {
	rows, err := db.Query(`SELECT id, teacher_id, subject, class_id, day, time, created_at
						   FROM timetable ORDER BY day, time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.TimetableEntry
	for rows.Next() {
		e := &models.TimetableEntry{}
		if err := rows.Scan(&e.ID, &e.TeacherID, &e.Subject, &e.ClassID, &e.Day, &e.Time, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func GetClasses(db *sql.DB) ([]*models.Class, error) {
	rows, err := db.Query(`SELECT id, name FROM classes ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		c := &models.Class{}
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}
