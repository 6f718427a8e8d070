package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"quiz-portal/app/controllers"
	"quiz-portal/app/db"
	"quiz-portal/app/middleware"
	"quiz-portal/app/models"
	"quiz-portal/app/repo"
	"quiz-portal/app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	gdb, err := db.Connect(db.Config{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Account{}, &models.SystemParam{}, &models.MenuItem{}, &models.QuizQuestion{}))

	accountSvc := services.NewAccountService(repo.NewAccountRepository(gdb))
	refSvc := services.NewReferenceService(repo.NewSystemParamRepository(gdb), repo.NewMenuRepository(gdb))
	quizSvc := services.NewQuizService(repo.NewQuizRepository(gdb))
	require.NoError(t, quizSvc.Seed())

	return NewRouter(
		controllers.NewStaticController(t.TempDir()),
		controllers.NewAuthController(accountSvc),
		controllers.NewMemberController(accountSvc),
		controllers.NewParamController(refSvc),
		controllers.NewMenuController(refSvc),
		controllers.NewQuizController(quizSvc),
		&middleware.Auth{Accounts: accountSvc},
	)
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func loginAs(t *testing.T, h http.Handler, username, password string) string {
	t.Helper()
	w := doJSON(t, h, http.MethodPost, "/register", "", map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, h, http.MethodPost, "/login", "", map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, w.Code)
	tok, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, tok)
	return tok
}

func TestSessionLifecycle(t *testing.T) {
	h := newTestRouter(t)

	w := doJSON(t, h, http.MethodPost, "/register", "", map[string]string{"username": "alice", "password": "p1"})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.NotZero(t, body["userId"])

	w = doJSON(t, h, http.MethodPost, "/login", "", map[string]string{"username": "alice", "password": "p1"})
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "alice", body["username"])
	tok := body["token"].(string)
	require.NotEmpty(t, tok)

	w = doJSON(t, h, http.MethodGet, "/api/check-auth", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, true, body["isAuthenticated"])
	assert.Equal(t, "alice", body["username"])

	w = doJSON(t, h, http.MethodPost, "/api/logout", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, h, http.MethodGet, "/api/check-auth", tok, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterFailures(t *testing.T) {
	h := newTestRouter(t)

	w := doJSON(t, h, http.MethodPost, "/register", "", map[string]string{"username": "", "password": "p"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, h, http.MethodPost, "/register", "", map[string]string{"username": "alice", "password": "p1"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, h, http.MethodPost, "/register", "", map[string]string{"username": "alice", "password": "p2"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginFailures(t *testing.T) {
	h := newTestRouter(t)
	w := doJSON(t, h, http.MethodPost, "/register", "", map[string]string{"username": "alice", "password": "p1"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, h, http.MethodPost, "/login", "", map[string]string{"username": "alice", "password": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	wUnknown := doJSON(t, h, http.MethodPost, "/login", "", map[string]string{"username": "ghost", "password": "p1"})
	wWrong := doJSON(t, h, http.MethodPost, "/login", "", map[string]string{"username": "alice", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, wUnknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wWrong.Code)
	assert.Equal(t, decode(t, wUnknown)["message"], decode(t, wWrong)["message"],
		"unknown user and wrong password must be indistinguishable")
}

func TestBearerRequired(t *testing.T) {
	h := newTestRouter(t)
	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/check-auth"},
		{http.MethodPost, "/api/logout"},
		{http.MethodGet, "/api/members"},
		{http.MethodGet, "/api/params"},
		{http.MethodGet, "/api/menus"},
		{http.MethodGet, "/api/quizzes"},
		{http.MethodPost, "/api/quiz/check-answer"},
	}
	for _, p := range paths {
		w := doJSON(t, h, p.method, p.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s without token", p.method, p.path)

		req := httptest.NewRequest(p.method, p.path, nil)
		req.Header.Set("Authorization", "Token abc") // wrong scheme
		w2 := httptest.NewRecorder()
		h.ServeHTTP(w2, req)
		assert.Equal(t, http.StatusUnauthorized, w2.Code)

		w = doJSON(t, h, p.method, p.path, "deadbeef", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s with bogus token", p.method, p.path)
	}
}

func TestQuizEndpoints(t *testing.T) {
	h := newTestRouter(t)
	tok := loginAs(t, h, "alice", "p1")

	w := doJSON(t, h, http.MethodGet, "/api/quizzes", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var questions []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &questions))
	require.NotEmpty(t, questions)
	for _, q := range questions {
		assert.NotContains(t, q, "correctAnswer")
		assert.NotContains(t, q, "correct_answer")
	}

	id := uint(questions[0]["id"].(float64))

	// grade every letter; exactly one is correct
	correctCount := 0
	var revealed string
	for _, letter := range []string{"A", "B", "C", "D"} {
		w = doJSON(t, h, http.MethodPost, "/api/quiz/check-answer", tok, map[string]any{"questionId": id, "answer": letter})
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		revealed = body["correctAnswer"].(string)
		if body["isCorrect"].(bool) {
			correctCount++
			assert.Equal(t, letter, revealed)
		}
	}
	assert.Equal(t, 1, correctCount)
	assert.Contains(t, []string{"A", "B", "C", "D"}, revealed)

	w = doJSON(t, h, http.MethodPost, "/api/quiz/check-answer", tok, map[string]any{"questionId": 99999, "answer": "A"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, h, http.MethodPost, "/api/quiz/check-answer", tok, map[string]any{"answer": "A"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(t, h, http.MethodPost, "/api/quiz/check-answer", tok, map[string]any{"questionId": id})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMemberEndpoints(t *testing.T) {
	h := newTestRouter(t)
	tok := loginAs(t, h, "alice", "p1")

	w := doJSON(t, h, http.MethodPost, "/api/members", tok, map[string]string{"username": "bob", "password": "p2"})
	require.Equal(t, http.StatusCreated, w.Code)
	bobID := uint(decode(t, w)["id"].(float64))

	w = doJSON(t, h, http.MethodGet, "/api/members", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var members []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &members))
	require.Len(t, members, 2)
	for _, m := range members {
		assert.NotContains(t, m, "password")
		assert.NotContains(t, m, "password_hash")
	}

	w = doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/members/%d", bobID), tok, map[string]string{"username": "alice"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/members/%d", bobID), tok, map[string]string{"username": "robert", "password": "p3"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, h, http.MethodPut, "/api/members/99999", tok, map[string]string{"username": "ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/members/%d", bobID), tok, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// alice is now the last row
	w = doJSON(t, h, http.MethodGet, "/api/members", tok, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &members))
	require.Len(t, members, 1)
	aliceID := uint(members[0]["id"].(float64))
	w = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/members/%d", aliceID), tok, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParamEndpoints(t *testing.T) {
	h := newTestRouter(t)
	tok := loginAs(t, h, "alice", "p1")

	w := doJSON(t, h, http.MethodPost, "/api/params", tok, map[string]string{"param_code": "site.title", "param_value": "Quiz Portal"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := uint(decode(t, w)["id"].(float64))

	w = doJSON(t, h, http.MethodPost, "/api/params", tok, map[string]string{"param_code": "incomplete"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/params/%d", id), tok,
		map[string]string{"param_code": "site.title", "param_value": "Portal", "sys_flag": "Y"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, h, http.MethodGet, "/api/params", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var params []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &params))
	require.Len(t, params, 1)
	assert.Equal(t, "Portal", params[0]["param_value"])

	w = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/params/%d", id), tok, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMenuEndpoints(t *testing.T) {
	h := newTestRouter(t)
	tok := loginAs(t, h, "alice", "p1")

	w := doJSON(t, h, http.MethodPost, "/api/menus", tok, map[string]any{"name": "Reports", "display_sequence": "00300"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, h, http.MethodPost, "/api/menus", tok, map[string]any{"name": "Home"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)
	assert.Equal(t, "00100", created["display_sequence"])
	assert.Equal(t, "Y", created["visible_flag"])
	assert.Equal(t, "N", created["open_in_new_tab_flag"])
	assert.NotEmpty(t, created["last_modified"])

	w = doJSON(t, h, http.MethodGet, "/api/menus", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Home", items[0]["name"], "menus sort by display_sequence")
	assert.Equal(t, "Reports", items[1]["name"])
}
