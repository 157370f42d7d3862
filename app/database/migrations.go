package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates any missing tables and indexes. Statements are
// idempotent so this is safe to run on every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			uin TEXT NOT NULL,
			role TEXT NOT NULL,
			full_name TEXT NOT NULL,
			username TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL,
			password TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_uin_idx ON users (uin)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_email_idx ON users (email)`,

		`CREATE TABLE IF NOT EXISTS pupils (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id),
			full_name TEXT NOT NULL,
			phone_number TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL,
			father_name TEXT NOT NULL DEFAULT '',
			mother_name TEXT NOT NULL DEFAULT '',
			guardian_name TEXT NOT NULL DEFAULT '',
			guardian_contact TEXT NOT NULL DEFAULT '',
			class TEXT NOT NULL,
			profile_picture TEXT NOT NULL DEFAULT '',
			uin TEXT NOT NULL,
			password TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS pupils_uin_idx ON pupils (uin)`,

		`CREATE TABLE IF NOT EXISTS teachers (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id),
			full_name TEXT NOT NULL,
			username TEXT NOT NULL,
			email TEXT NOT NULL,
			class_taught TEXT NOT NULL,
			years_of_experience INT NOT NULL DEFAULT 0,
			uin TEXT NOT NULL,
			profile_picture TEXT NOT NULL DEFAULT '',
			password TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS teachers_uin_idx ON teachers (uin)`,

		`CREATE TABLE IF NOT EXISTS classes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL UNIQUE
		)`,

		`CREATE TABLE IF NOT EXISTS cbt_exams (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			exam_title TEXT NOT NULL,
			subject TEXT NOT NULL,
			class_id TEXT NOT NULL DEFAULT '',
			teacher_id TEXT NOT NULL DEFAULT '',
			duration INT NOT NULL DEFAULT 30,
			questions JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS exam_sessions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			exam_id UUID NOT NULL REFERENCES cbt_exams(id) ON DELETE CASCADE,
			pupil_uin TEXT NOT NULL,
			started_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			expires_at TIMESTAMPTZ NOT NULL,
			answers JSONB NOT NULL DEFAULT '{}',
			submitted BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS exam_sessions_exam_pupil_idx
			ON exam_sessions (exam_id, pupil_uin)`,

		`CREATE TABLE IF NOT EXISTS exam_attempts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			exam_id UUID NOT NULL REFERENCES cbt_exams(id) ON DELETE CASCADE,
			pupil_uin TEXT NOT NULL DEFAULT '',
			answers JSONB NOT NULL DEFAULT '{}',
			score INT NOT NULL DEFAULT 0,
			submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS exam_attempts_exam_pupil_idx
			ON exam_attempts (exam_id, pupil_uin)`,

		`CREATE TABLE IF NOT EXISTS exam_results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			teacher_id TEXT NOT NULL,
			pupil_id TEXT NOT NULL,
			subject TEXT NOT NULL,
			score INT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS blogs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			author_id TEXT NOT NULL,
			author_name TEXT NOT NULL,
			author_role TEXT NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS alerts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			teacher_id TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL,
			start_time TIMESTAMPTZ NOT NULL,
			end_time TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS assignments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			teacher_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			due_date TIMESTAMPTZ NOT NULL,
			class_id TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS submissions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			assignment_id UUID NOT NULL REFERENCES assignments(id) ON DELETE CASCADE,
			pupil_id TEXT NOT NULL DEFAULT '',
			submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			file_url TEXT NOT NULL DEFAULT '',
			text_submission TEXT NOT NULL DEFAULT '',
			grade TEXT NOT NULL DEFAULT '',
			feedback TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS tests_quizzes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			due_date TIMESTAMPTZ NOT NULL,
			class_id TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS messages (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			teacher_id TEXT NOT NULL,
			pupil_id TEXT NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS timetable (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			teacher_id TEXT NOT NULL,
			subject TEXT NOT NULL,
			class_id TEXT NOT NULL,
			day TEXT NOT NULL,
			time TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
