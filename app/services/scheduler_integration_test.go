package services

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/database"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	require.NoError(t, database.RunMigrations(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSubmitExpiredSessionsGradesDrafts(t *testing.T) {
	db := testDB(t)

	exam := &models.CBTExam{
		ExamTitle: "Reaper Test Exam",
		Subject:   "English",
		Duration:  30,
		Questions: models.QuestionList{
			{Question: "Plural of child?", Options: []string{"childs", "children"}, CorrectAnswer: "children"},
			{Question: "Opposite of up?", Options: []string{"down", "left"}, CorrectAnswer: "down"},
		},
	}
	require.NoError(t, database.CreateCBTExam(db, exam))
	t.Cleanup(func() { _ = database.DeleteCBTExam(db, exam.ID) })

	uin := fmt.Sprintf("GFA-P-%d", 1000+rand.Intn(9000))

	_, err := database.StartExamSession(db, exam.ID, uin, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	require.NoError(t, database.SaveSessionAnswers(db, exam.ID, uin, models.AnswerMap{0: "children", 1: "left"}))

	require.NoError(t, SubmitExpiredSessions(db, time.Now()))

	attempt, err := database.GetExamAttempt(db, exam.ID, uin)
	require.NoError(t, err)
	require.Equal(t, 1, attempt.Score)

	session, err := database.GetExamSession(db, exam.ID, uin)
	require.NoError(t, err)
	require.True(t, session.Submitted)

	// A second sweep finds nothing to do for this session.
	require.NoError(t, SubmitExpiredSessions(db, time.Now()))
	again, err := database.GetExamAttempt(db, exam.ID, uin)
	require.NoError(t, err)
	require.Equal(t, attempt.ID, again.ID)
}
