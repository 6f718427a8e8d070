package services

import (
	"path/filepath"
	"testing"

	"quiz-portal/app/db"
	"quiz-portal/app/models"
	"quiz-portal/app/repo"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Connect(db.Config{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Account{}, &models.SystemParam{}, &models.MenuItem{}, &models.QuizQuestion{}))
	return gdb
}

func newAccountService(t *testing.T) *AccountService {
	t.Helper()
	return NewAccountService(repo.NewAccountRepository(newTestDB(t)))
}
