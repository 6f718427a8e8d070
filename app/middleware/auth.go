package middleware

import (
	"context"
	"net/http"
	"strings"

	"quiz-portal/app/services"
)

type ctxKey int

const AccountKey ctxKey = 1

// Auth resolves bearer tokens against the credential store. Tokens are
// opaque rows, not signed claims, so every guarded request costs exactly one
// lookup and a token stops working the moment the row is overwritten.
type Auth struct{ Accounts *services.AccountService }

func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			unauthorized(w, "authentication required")
			return
		}
		t := strings.TrimPrefix(authz, "Bearer ")
		account, err := a.Accounts.FindByToken(t)
		if err != nil {
			unauthorized(w, "invalid session")
			return
		}
		ctx := context.WithValue(r.Context(), AccountKey, account)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"message":"` + msg + `"}`))
}
