package services

import "github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"

// GradeExam scores submitted answers against the exam's question list.
// An answer counts only when it exactly equals the correct option string
// for that question index; unanswered questions score nothing. No
// partial credit, weighting or negative marking.
func GradeExam(questions models.QuestionList, answers models.AnswerMap) int {
	score := 0
	for i, q := range questions {
		if answer, ok := answers[i]; ok && answer == q.CorrectAnswer {
			score++
		}
	}
	return score
}
