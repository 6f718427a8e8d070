package controllers

import (
	"encoding/json"
	"net/http"

	"quiz-portal/app/dto"
	"quiz-portal/app/services"
)

type QuizController struct{ Quiz *services.QuizService }

func NewQuizController(quiz *services.QuizService) *QuizController {
	return &QuizController{Quiz: quiz}
}

func (c *QuizController) List(w http.ResponseWriter, r *http.Request) {
	questions, err := c.Quiz.ListQuestions()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

func (c *QuizController) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckAnswerRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	correct, answer, err := c.Quiz.CheckAnswer(req.QuestionID, req.Answer)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.CheckAnswerResponse{IsCorrect: correct, CorrectAnswer: answer})
}
