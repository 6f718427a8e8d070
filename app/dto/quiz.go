package dto

type CheckAnswerRequest struct {
	QuestionID uint   `json:"questionId"`
	Answer     string `json:"answer"`
}

type CheckAnswerResponse struct {
	IsCorrect     bool   `json:"isCorrect"`
	CorrectAnswer string `json:"correctAnswer"`
}
