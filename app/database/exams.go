package database

import (
	"database/sql"
	"time"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
)

func CreateCBTExam(db *sql.DB, exam *models.CBTExam) error {
	query := `INSERT INTO cbt_exams (exam_title, subject, class_id, teacher_id, duration, questions)
			  VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	return db.QueryRow(query,
		exam.ExamTitle, exam.Subject, exam.ClassID, exam.TeacherID, exam.Duration, exam.Questions,
	).Scan(&exam.ID, &exam.CreatedAt)
}

func GetCBTExams(db *sql.DB) ([]*models.CBTExam, error) {
	rows, err := db.Query(`SELECT id, exam_title, subject, class_id, teacher_id, duration, questions, created_at
						   FROM cbt_exams ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []*models.CBTExam
	for rows.Next() {
		e := &models.CBTExam{}
		if err := rows.Scan(&e.ID, &e.ExamTitle, &e.Subject, &e.ClassID, &e.TeacherID,
			&e.Duration, &e.Questions, &e.CreatedAt); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

func GetCBTExam(db *sql.DB, id string) (*models.CBTExam, error) {
	e := &models.CBTExam{}
	query := `SELECT id, exam_title, subject, class_id, teacher_id, duration, questions, created_at
			  FROM cbt_exams WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&e.ID, &e.ExamTitle, &e.Subject, &e.ClassID,
		&e.TeacherID, &e.Duration, &e.Questions, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func UpdateCBTExam(db *sql.DB, exam *models.CBTExam) error {
	query := `UPDATE cbt_exams SET exam_title = $1, subject = $2, duration = $3, questions = $4
			  WHERE id = $5`
	_, err := db.Exec(query, exam.ExamTitle, exam.Subject, exam.Duration, exam.Questions, exam.ID)
	return err
}

func DeleteCBTExam(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM cbt_exams WHERE id = $1`, id)
	return err
}

// StartExamSession opens a session for (examID, uin), or returns the one
// already open. Starting twice never resets the clock.
func StartExamSession(db *sql.DB, examID, uin string, expiresAt time.Time) (*models.ExamSession, error) {
	_, err := db.Exec(`INSERT INTO exam_sessions (exam_id, pupil_uin, expires_at)
					   VALUES ($1, $2, $3)
					   ON CONFLICT (exam_id, pupil_uin) DO NOTHING`, examID, uin, expiresAt)
	if err != nil {
		return nil, err
	}
	return GetExamSession(db, examID, uin)
}

func GetExamSession(db *sql.DB, examID, uin string) (*models.ExamSession, error) {
	s := &models.ExamSession{}
	query := `SELECT id, exam_id, pupil_uin, started_at, expires_at, answers, submitted
			  FROM exam_sessions WHERE exam_id = $1 AND pupil_uin = $2`
	err := db.QueryRow(query, examID, uin).Scan(
		&s.ID, &s.ExamID, &s.PupilUIN, &s.StartedAt, &s.ExpiresAt, &s.Answers, &s.Submitted,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// SaveSessionAnswers replaces the draft answers on an open session.
// Returns sql.ErrNoRows when there is no open session to write to.
func SaveSessionAnswers(db *sql.DB, examID, uin string, answers models.AnswerMap) error {
	res, err := db.Exec(`UPDATE exam_sessions SET answers = $1
						 WHERE exam_id = $2 AND pupil_uin = $3 AND submitted = FALSE`,
		answers, examID, uin)
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

// CloseExamSession flips the submitted flag exactly once. The guarded
// UPDATE means a racing explicit submission and the reaper cannot both
// win; the loser gets sql.ErrNoRows.
func CloseExamSession(db *sql.DB, examID, uin string) error {
	res, err := db.Exec(`UPDATE exam_sessions SET submitted = TRUE
						 WHERE exam_id = $1 AND pupil_uin = $2 AND submitted = FALSE`, examID, uin)
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

// ExpiredSessions returns open sessions whose deadline has passed.
func ExpiredSessions(db *sql.DB, now time.Time) ([]*models.ExamSession, error) {
	rows, err := db.Query(`SELECT id, exam_id, pupil_uin, started_at, expires_at, answers, submitted
						   FROM exam_sessions WHERE submitted = FALSE AND expires_at <= $1`, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.ExamSession
	for rows.Next() {
		s := &models.ExamSession{}
		if err := rows.Scan(&s.ID, &s.ExamID, &s.PupilUIN, &s.StartedAt,
			&s.ExpiresAt, &s.Answers, &s.Submitted); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// CreateExamAttempt records a graded attempt. The unique index on
// (exam_id, pupil_uin) makes a duplicate submission a no-op; the stored
// attempt is returned either way.
func CreateExamAttempt(db *sql.DB, attempt *models.ExamAttempt) (*models.ExamAttempt, error) {
	_, err := db.Exec(`INSERT INTO exam_attempts (exam_id, pupil_uin, answers, score)
					   VALUES ($1, $2, $3, $4)
					   ON CONFLICT (exam_id, pupil_uin) DO NOTHING`,
		attempt.ExamID, attempt.PupilUIN, attempt.Answers, attempt.Score)
	if err != nil {
		return nil, err
	}
	return GetExamAttempt(db, attempt.ExamID, attempt.PupilUIN)
}

func GetExamAttempt(db *sql.DB, examID, uin string) (*models.ExamAttempt, error) {
	a := &models.ExamAttempt{}
	query := `SELECT id, exam_id, pupil_uin, answers, score, submitted_at
			  FROM exam_attempts WHERE exam_id = $1 AND pupil_uin = $2`
	err := db.QueryRow(query, examID, uin).Scan(
		&a.ID, &a.ExamID, &a.PupilUIN, &a.Answers, &a.Score, &a.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func GetExamAttemptsByPupil(db *sql.DB, uin string) ([]*models.ExamAttempt, error) {
	rows, err := db.Query(`SELECT id, exam_id, pupil_uin, answers, score, submitted_at
						   FROM exam_attempts WHERE pupil_uin = $1 ORDER BY submitted_at DESC`, uin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []*models.ExamAttempt
	for rows.Next() {
		a := &models.ExamAttempt{}
		if err := rows.Scan(&a.ID, &a.ExamID, &a.PupilUIN, &a.Answers, &a.Score, &a.SubmittedAt); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

func CreateExamResult(db *sql.DB, r *models.ExamResult) error {
	query := `INSERT INTO exam_results (teacher_id, pupil_id, subject, score)
			  VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	return db.QueryRow(query, r.TeacherID, r.PupilID, r.Subject, r.Score).Scan(&r.ID, &r.CreatedAt)
}

func GetExamResults(db *sql.DB) ([]*models.ExamResult, error) {
	rows, err := db.Query(`SELECT id, teacher_id, pupil_id, subject, score, created_at
						   FROM exam_results ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*models.ExamResult
	for rows.Next() {
		r := &models.ExamResult{}
		if err := rows.Scan(&r.ID, &r.TeacherID, &r.PupilID, &r.Subject, &r.Score, &r.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
