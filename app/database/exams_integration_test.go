package database

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
)

// testDB connects to the database named by TEST_DATABASE_URL and runs
// migrations. Tests are skipped when the variable is unset.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	require.NoError(t, RunMigrations(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestExam(t *testing.T, db *sql.DB) *models.CBTExam {
	t.Helper()
	exam := &models.CBTExam{
		ExamTitle: "Integration Test Exam",
		Subject:   "Mathematics",
		Duration:  30,
		Questions: models.QuestionList{
			{Question: "1+1?", Options: []string{"1", "2"}, CorrectAnswer: "2"},
			{Question: "2+2?", Options: []string{"3", "4"}, CorrectAnswer: "4"},
		},
	}
	require.NoError(t, CreateCBTExam(db, exam))
	t.Cleanup(func() { _ = DeleteCBTExam(db, exam.ID) })
	return exam
}

func testUIN() string {
	return fmt.Sprintf("GFA-P-%d", 1000+rand.Intn(9000))
}

func TestExamRoundTrip(t *testing.T) {
	db := testDB(t)
	exam := createTestExam(t, db)

	got, err := GetCBTExam(db, exam.ID)
	require.NoError(t, err)
	require.Equal(t, exam.ExamTitle, got.ExamTitle)
	require.Equal(t, exam.Questions, got.Questions)

	got.ExamTitle = "Renamed"
	require.NoError(t, UpdateCBTExam(db, got))

	got2, err := GetCBTExam(db, exam.ID)
	require.NoError(t, err)
	require.Equal(t, "Renamed", got2.ExamTitle)
}

func TestStartExamSessionKeepsDeadline(t *testing.T) {
	db := testDB(t)
	exam := createTestExam(t, db)
	uin := testUIN()

	first, err := StartExamSession(db, exam.ID, uin, time.Now().Add(30*time.Minute))
	require.NoError(t, err)

	// A second start must return the same session, not a fresh clock.
	second, err := StartExamSession(db, exam.ID, uin, time.Now().Add(2*time.Hour))
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.WithinDuration(t, first.ExpiresAt, second.ExpiresAt, time.Second)
}

func TestSaveSessionAnswers(t *testing.T) {
	db := testDB(t)
	exam := createTestExam(t, db)
	uin := testUIN()

	err := SaveSessionAnswers(db, exam.ID, uin, models.AnswerMap{0: "2"})
	require.ErrorIs(t, err, sql.ErrNoRows)

	_, err = StartExamSession(db, exam.ID, uin, time.Now().Add(30*time.Minute))
	require.NoError(t, err)

	require.NoError(t, SaveSessionAnswers(db, exam.ID, uin, models.AnswerMap{0: "2", 1: "3"}))

	session, err := GetExamSession(db, exam.ID, uin)
	require.NoError(t, err)
	require.Equal(t, models.AnswerMap{0: "2", 1: "3"}, session.Answers)
}

func TestCloseExamSessionExactlyOnce(t *testing.T) {
	db := testDB(t)
	exam := createTestExam(t, db)
	uin := testUIN()

	_, err := StartExamSession(db, exam.ID, uin, time.Now().Add(30*time.Minute))
	require.NoError(t, err)

	require.NoError(t, CloseExamSession(db, exam.ID, uin))
	require.ErrorIs(t, CloseExamSession(db, exam.ID, uin), sql.ErrNoRows)

	// Writes after submission are rejected.
	require.ErrorIs(t, SaveSessionAnswers(db, exam.ID, uin, models.AnswerMap{0: "2"}), sql.ErrNoRows)
}

func TestCreateExamAttemptIdempotent(t *testing.T) {
	db := testDB(t)
	exam := createTestExam(t, db)
	uin := testUIN()

	first, err := CreateExamAttempt(db, &models.ExamAttempt{
		ExamID:   exam.ID,
		PupilUIN: uin,
		Answers:  models.AnswerMap{0: "2", 1: "4"},
		Score:    2,
	})
	require.NoError(t, err)
	require.Equal(t, 2, first.Score)

	// A duplicate submission with different answers keeps the first score.
	second, err := CreateExamAttempt(db, &models.ExamAttempt{
		ExamID:   exam.ID,
		PupilUIN: uin,
		Answers:  models.AnswerMap{},
		Score:    0,
	})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 2, second.Score)
}

func TestExpiredSessionsPicksUpOverdue(t *testing.T) {
	db := testDB(t)
	exam := createTestExam(t, db)
	uin := testUIN()

	_, err := StartExamSession(db, exam.ID, uin, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	sessions, err := ExpiredSessions(db, time.Now())
	require.NoError(t, err)

	found := false
	for _, s := range sessions {
		if s.ExamID == exam.ID && s.PupilUIN == uin {
			found = true
		}
	}
	require.True(t, found)

	require.NoError(t, CloseExamSession(db, exam.ID, uin))

	sessions, err = ExpiredSessions(db, time.Now())
	require.NoError(t, err)
	for _, s := range sessions {
		require.False(t, s.ExamID == exam.ID && s.PupilUIN == uin)
	}
}
