package repo

import (
	"quiz-portal/app/models"

	"gorm.io/gorm"
)

type QuizRepository struct{ db *gorm.DB }

func NewQuizRepository(db *gorm.DB) *QuizRepository { return &QuizRepository{db: db} }

func (r *QuizRepository) List() ([]models.QuizQuestion, error) {
	var questions []models.QuizQuestion
	err := r.db.Order("id ASC").Find(&questions).Error
	return questions, err
}

func (r *QuizRepository) FindByID(id uint) (*models.QuizQuestion, error) {
	var q models.QuizQuestion
	if err := r.db.First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

// SeedIfEmpty loads the fixed question bank once; restarts leave an already
// seeded table untouched.
func (r *QuizRepository) SeedIfEmpty(bank []models.QuizQuestion) error {
	var count int64
	if err := r.db.Model(&models.QuizQuestion{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.Create(&bank).Error
}
