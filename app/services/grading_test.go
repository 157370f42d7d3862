package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TECHTUNE-I-T-SOLUTIONS/gloriousfuture/app/models"
)

func sampleQuestions() models.QuestionList {
	return models.QuestionList{
		{Question: "2+2?", Options: []string{"A", "B", "C"}, CorrectAnswer: "B"},
		{Question: "Capital of Nigeria?", Options: []string{"Lagos", "Abuja"}, CorrectAnswer: "Abuja"},
		{Question: "Colour of the sky?", Options: []string{"Blue", "Green"}, CorrectAnswer: "Blue"},
	}
}

func TestGradeExam(t *testing.T) {
	questions := sampleQuestions()

	cases := []struct {
		name    string
		answers models.AnswerMap
		want    int
	}{
		{"all correct", models.AnswerMap{0: "B", 1: "Abuja", 2: "Blue"}, 3},
		{"partially correct", models.AnswerMap{0: "B", 1: "Lagos"}, 1},
		{"all wrong", models.AnswerMap{0: "A", 1: "Lagos", 2: "Green"}, 0},
		{"empty answers", models.AnswerMap{}, 0},
		{"nil answers", nil, 0},
		{"out of range index ignored", models.AnswerMap{7: "B"}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, GradeExam(questions, tc.answers))
		})
	}
}

func TestGradeExamExactMatchOnly(t *testing.T) {
	questions := sampleQuestions()

	// Case and whitespace differences do not count.
	require.Equal(t, 0, GradeExam(questions, models.AnswerMap{0: "b", 1: "abuja "}))
}

func TestGradeExamNoQuestions(t *testing.T) {
	require.Equal(t, 0, GradeExam(nil, models.AnswerMap{0: "B"}))
}
