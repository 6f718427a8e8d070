package middleware

import (
	"context"

	"quiz-portal/app/models"
)

func GetAccount(ctx context.Context) *models.Account {
	if v := ctx.Value(AccountKey); v != nil {
		if a, ok := v.(*models.Account); ok {
			return a
		}
	}
	return nil
}
