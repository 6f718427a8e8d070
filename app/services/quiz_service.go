package services

import (
	"errors"

	"quiz-portal/app/models"
	"quiz-portal/app/repo"

	"gorm.io/gorm"
)

type QuizService struct{ questions *repo.QuizRepository }

func NewQuizService(questions *repo.QuizRepository) *QuizService {
	return &QuizService{questions: questions}
}

// ListQuestions returns the whole bank; answers stay server-side because the
// model never serialises CorrectAnswer.
func (s *QuizService) ListQuestions() ([]models.QuizQuestion, error) {
	return s.questions.List()
}

// CheckAnswer grades one submission. The match is a case-sensitive letter
// comparison, and the stored answer is revealed either way.
func (s *QuizService) CheckAnswer(questionID uint, answer string) (correct bool, correctAnswer string, err error) {
	if questionID == 0 || answer == "" {
		return false, "", ErrInvalidInput
	}
	q, err := s.questions.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, "", ErrNotFound
		}
		return false, "", err
	}
	return answer == q.CorrectAnswer, q.CorrectAnswer, nil
}

// Seed loads the fixed bank into an empty question table.
func (s *QuizService) Seed() error {
	return s.questions.SeedIfEmpty(defaultBank())
}

func defaultBank() []models.QuizQuestion {
	return []models.QuizQuestion{
		{Question: "Which planet is known as the Red Planet?", OptionA: "Venus", OptionB: "Mars", OptionC: "Jupiter", OptionD: "Saturn", CorrectAnswer: "B"},
		{Question: "What is the largest ocean on Earth?", OptionA: "Atlantic", OptionB: "Indian", OptionC: "Pacific", OptionD: "Arctic", CorrectAnswer: "C"},
		{Question: "Who painted the Mona Lisa?", OptionA: "Leonardo da Vinci", OptionB: "Michelangelo", OptionC: "Raphael", OptionD: "Donatello", CorrectAnswer: "A"},
		{Question: "What is the chemical symbol for gold?", OptionA: "Go", OptionB: "Gd", OptionC: "Ag", OptionD: "Au", CorrectAnswer: "D"},
		{Question: "How many continents are there?", OptionA: "Five", OptionB: "Six", OptionC: "Seven", OptionD: "Eight", CorrectAnswer: "C"},
		{Question: "Which gas do plants absorb from the atmosphere?", OptionA: "Carbon dioxide", OptionB: "Oxygen", OptionC: "Nitrogen", OptionD: "Hydrogen", CorrectAnswer: "A"},
		{Question: "What is the capital of Japan?", OptionA: "Osaka", OptionB: "Tokyo", OptionC: "Kyoto", OptionD: "Nagoya", CorrectAnswer: "B"},
		{Question: "In which year did the Second World War end?", OptionA: "1943", OptionB: "1944", OptionC: "1945", OptionD: "1946", CorrectAnswer: "C"},
	}
}
