package database

import (
	"database/sql"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
)

func CreateAssignment(db *sql.DB, a *models.Assignment) error {
	query := `INSERT INTO assignments (teacher_id, title, description, due_date, class_id)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	return db.QueryRow(query, a.TeacherID, a.Title, a.Description, a.DueDate, a.ClassID).
		Scan(&a.ID, &a.CreatedAt)
}

func GetAssignments(db *sql.DB) ([]*models.Assignment, error) {
	rows, err := db.Query(`SELECT id, teacher_id, title, description, due_date, class_id, created_at
						   FROM assignments ORDER BY due_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []*models.Assignment
	for rows.Next() {
		a := &models.Assignment{}
		if err := rows.Scan(&a.ID, &a.TeacherID, &a.Title, &a.Description,
			&a.DueDate, &a.ClassID, &a.CreatedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func CreateSubmission(db *sql.DB, s *models.Submission) error {
	query := `INSERT INTO submissions (assignment_id, pupil_id, file_url, text_submission)
			  VALUES ($1, $2, $3, $4) RETURNING id, submitted_at`
	return db.QueryRow(query, s.AssignmentID, s.PupilID, s.FileURL, s.TextSubmission).
		Scan(&s.ID, &s.SubmittedAt)
}

func GetSubmissions(db *sql.DB) ([]*models.Submission, error) {
	rows, err := db.Query(`SELECT id, assignment_id, pupil_id, submitted_at, file_url,
						   text_submission, grade, feedback
						   FROM submissions ORDER BY submitted_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []*models.Submission
	for rows.Next() {
		s := &models.Submission{}
		if err := rows.Scan(&s.ID, &s.AssignmentID, &s.PupilID, &s.SubmittedAt,
			&s.FileURL, &s.TextSubmission, &s.Grade, &s.Feedback); err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

// GradeSubmission records a teacher's grade and feedback on a submission.
func GradeSubmission(db *sql.DB, submissionID, grade, feedback string) error {
	res, err := db.Exec(`UPDATE submissions SET grade = $1, feedback = $2 WHERE id = $3`,
		grade, feedback, submissionID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func CreateTestQuiz(db *sql.DB, t *models.TestQuiz) error {
	query := `INSERT INTO tests_quizzes (title, description, due_date, class_id)
			  VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	return db.QueryRow(query, t.Title, t.Description, t.DueDate, t.ClassID).Scan(&t.ID, &t.CreatedAt)
}

func GetTestQuizzes(db *sql.DB) ([]*models.TestQuiz, error) {
	rows, err := db.Query(`SELECT id, title, description, due_date, class_id, created_at
						   FROM tests_quizzes ORDER BY due_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quizzes []*models.TestQuiz
	for rows.Next() {
		t := &models.TestQuiz{}
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &t.ClassID, &t.CreatedAt); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, t)
	}
	return quizzes, rows.Err()
}

func UpdateTestQuiz(db *sql.DB, t *models.TestQuiz) error {
	query := `UPDATE tests_quizzes SET title = $1, description = $2, due_date = $3, class_id = $4
			  WHERE id = $5`
	_, err := db.Exec(query, t.Title, t.Description, t.DueDate, t.ClassID, t.ID)
	return err
}

func DeleteTestQuiz(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM tests_quizzes WHERE id = $1`, id)
	return err
}
