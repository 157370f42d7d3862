package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/database"
	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
)

// StartScheduler runs the exam auto-submit reaper in the background.
// Pupils whose countdown runs out with the tab closed still get their
// draft answers graded once the session deadline passes.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			if err := SubmitExpiredSessions(db, time.Now()); err != nil {
				log.Printf("Error auto-submitting expired exam sessions: %v", err)
			}
		}
	}()
}

// SubmitExpiredSessions grades every open session past its deadline.
// CloseExamSession is the exactly-once gate: when it reports no open row,
// an explicit submission got there first and the session is skipped.
func SubmitExpiredSessions(db *sql.DB, now time.Time) error {
	sessions, err := database.ExpiredSessions(db, now)
	if err != nil {
		return err
	}

	for _, s := range sessions {
		if err := database.CloseExamSession(db, s.ExamID, s.PupilUIN); err != nil {
			if err == sql.ErrNoRows {
				continue
			}
			return err
		}

		exam, err := database.GetCBTExam(db, s.ExamID)
		if err != nil {
			log.Printf("Auto-submit: exam %s not found for session %s: %v", s.ExamID, s.ID, err)
			continue
		}

		attempt := &models.ExamAttempt{
			ExamID:   s.ExamID,
			PupilUIN: s.PupilUIN,
			Answers:  s.Answers,
			Score:    GradeExam(exam.Questions, s.Answers),
		}
		if _, err := database.CreateExamAttempt(db, attempt); err != nil {
			log.Printf("Auto-submit: failed to record attempt for session %s: %v", s.ID, err)
			continue
		}
		log.Printf("Auto-submitted exam %s for pupil %s (score %d)", s.ExamID, s.PupilUIN, attempt.Score)
	}
	return nil
}
