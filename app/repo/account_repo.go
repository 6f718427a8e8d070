package repo

import (
	"errors"

	"quiz-portal/app/models"

	"gorm.io/gorm"
)

// ErrLastAccount is returned when a delete would leave the account table empty.
var ErrLastAccount = errors.New("last account cannot be deleted")

type AccountRepository struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) *AccountRepository { return &AccountRepository{db: db} }

func (r *AccountRepository) FindByUsername(username string) (*models.Account, error) {
	var a models.Account
	if err := r.db.Where("username = ?", username).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) FindByToken(token string) (*models.Account, error) {
	var a models.Account
	if err := r.db.Where("token = ?", token).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) FindByID(id uint) (*models.Account, error) {
	var a models.Account
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// Create relies on the unique index on username; a duplicate surfaces as
// gorm.ErrDuplicatedKey instead of a separate lookup racing the insert.
func (r *AccountRepository) Create(a *models.Account) error { return r.db.Create(a).Error }

// SetToken writes or clears (nil) the single session token slot.
func (r *AccountRepository) SetToken(id uint, token *string) error {
	return r.db.Model(&models.Account{}).Where("id = ?", id).Update("token", token).Error
}

func (r *AccountRepository) UpdateCredentials(id uint, updates map[string]any) error {
	return r.db.Model(&models.Account{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes the account unless it is the last one left. The count and
// the delete run in one transaction so concurrent deletes cannot drop the
// table below one row.
func (r *AccountRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Account{}).Count(&count).Error; err != nil {
			return err
		}
		if count <= 1 {
			return ErrLastAccount
		}
		res := tx.Delete(&models.Account{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *AccountRepository) List() ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.Order("id ASC").Find(&accounts).Error
	return accounts, err
}

func (r *AccountRepository) Count() (int64, error) {
	var count int64
	return count, r.db.Model(&models.Account{}).Count(&count).Error
}
