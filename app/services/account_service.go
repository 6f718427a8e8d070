package services

import (
	"errors"

	"quiz-portal/app/models"
	"quiz-portal/app/repo"
	"quiz-portal/app/token"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// hashSlots bounds concurrent bcrypt work so a burst of logins cannot pin
// every scheduler thread on hashing.
const hashSlots = 4

type AccountService struct {
	accounts *repo.AccountRepository
	hashSem  chan struct{}
}

func NewAccountService(accounts *repo.AccountRepository) *AccountService {
	return &AccountService{accounts: accounts, hashSem: make(chan struct{}, hashSlots)}
}

func (s *AccountService) hashPassword(password string) (string, error) {
	s.hashSem <- struct{}{}
	defer func() { <-s.hashSem }()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

func (s *AccountService) comparePassword(hash, password string) error {
	s.hashSem <- struct{}{}
	defer func() { <-s.hashSem }()
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// Register creates an account. The unique index decides duplicates, so two
// concurrent registrations of the same name cannot both succeed.
func (s *AccountService) Register(username, password string) (uint, error) {
	if username == "" || password == "" {
		return 0, ErrInvalidInput
	}
	hash, err := s.hashPassword(password)
	if err != nil {
		return 0, err
	}
	a := models.Account{Username: username, PasswordHash: hash}
	if err := s.accounts.Create(&a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrDuplicateUsername
		}
		return 0, err
	}
	return a.ID, nil
}

// Login verifies the credentials and rotates the session token. Unknown
// username and wrong password return the same error so callers cannot probe
// which usernames exist.
func (s *AccountService) Login(username, password string) (*models.Account, string, error) {
	if username == "" || password == "" {
		return nil, "", ErrInvalidInput
	}
	a, err := s.accounts.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if s.comparePassword(a.PasswordHash, password) != nil {
		return nil, "", ErrInvalidCredentials
	}
	t, err := token.New()
	if err != nil {
		return nil, "", err
	}
	if err := s.accounts.SetToken(a.ID, &t); err != nil {
		return nil, "", err
	}
	return a, t, nil
}

// Logout clears the token slot; logging out twice is not an error.
func (s *AccountService) Logout(accountID uint) error {
	return s.accounts.SetToken(accountID, nil)
}

func (s *AccountService) FindByToken(t string) (*models.Account, error) {
	return s.accounts.FindByToken(t)
}

func (s *AccountService) ListMembers() ([]models.Account, error) {
	return s.accounts.List()
}

func (s *AccountService) CreateMember(username, password string) (uint, error) {
	return s.Register(username, password)
}

// UpdateMember renames the account and, when password is non-empty, rehashes
// it. Renaming onto an existing username fails the same way Register does.
func (s *AccountService) UpdateMember(id uint, username, password string) error {
	if username == "" {
		return ErrInvalidInput
	}
	if _, err := s.accounts.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	updates := map[string]any{"username": username}
	if password != "" {
		hash, err := s.hashPassword(password)
		if err != nil {
			return err
		}
		updates["password_hash"] = hash
	}
	err := s.accounts.UpdateCredentials(id, updates)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateUsername
	}
	return err
}

func (s *AccountService) DeleteMember(id uint) error {
	err := s.accounts.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// EnsureAdmin seeds the initial account on a fresh database so the
// last-account floor always has something to protect.
func (s *AccountService) EnsureAdmin(username, password string) error {
	count, err := s.accounts.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = s.Register(username, password)
	if errors.Is(err, ErrDuplicateUsername) {
		return nil
	}
	return err
}
