package services

import (
	"testing"

	"quiz-portal/app/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizService(t *testing.T) *QuizService {
	t.Helper()
	svc := NewQuizService(repo.NewQuizRepository(newTestDB(t)))
	require.NoError(t, svc.Seed())
	return svc
}

func TestSeedIdempotent(t *testing.T) {
	svc := newQuizService(t)
	require.NoError(t, svc.Seed())

	questions, err := svc.ListQuestions()
	require.NoError(t, err)
	assert.Len(t, questions, len(defaultBank()))
}

func TestCheckAnswer(t *testing.T) {
	svc := newQuizService(t)
	questions, err := svc.ListQuestions()
	require.NoError(t, err)
	require.NotEmpty(t, questions)
	q := questions[0]

	correct, answer, err := svc.CheckAnswer(q.ID, q.CorrectAnswer)
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, q.CorrectAnswer, answer)

	wrong := "A"
	if q.CorrectAnswer == "A" {
		wrong = "B"
	}
	correct, answer, err = svc.CheckAnswer(q.ID, wrong)
	require.NoError(t, err)
	assert.False(t, correct)
	assert.Equal(t, q.CorrectAnswer, answer, "verdict reveals the key either way")
}

func TestCheckAnswerCaseSensitive(t *testing.T) {
	svc := newQuizService(t)
	questions, err := svc.ListQuestions()
	require.NoError(t, err)
	q := questions[0]

	lower := string(q.CorrectAnswer[0] | 0x20)
	correct, _, err := svc.CheckAnswer(q.ID, lower)
	require.NoError(t, err)
	assert.False(t, correct)
}

func TestCheckAnswerErrors(t *testing.T) {
	svc := newQuizService(t)
	_, _, err := svc.CheckAnswer(0, "A")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, _, err = svc.CheckAnswer(1, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, _, err = svc.CheckAnswer(99999, "A")
	assert.ErrorIs(t, err, ErrNotFound)
}
