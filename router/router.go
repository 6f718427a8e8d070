package router

import (
	"net/http"

	"quiz-portal/app/controllers"
	"quiz-portal/app/middleware"
)

// NewRouter is the one authoritative route table. Registration, login and
// the static pages are public; everything under /api requires a bearer
// token, menus and param reads included.
func NewRouter(
	static *controllers.StaticController,
	auth *controllers.AuthController,
	members *controllers.MemberController,
	params *controllers.ParamController,
	menus *controllers.MenuController,
	quiz *controllers.QuizController,
	mw *middleware.Auth,
) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("GET /{$}", static.Page("index.html"))
	mux.HandleFunc("GET /dashboard", static.Page("dashboard.html"))
	mux.HandleFunc("GET /quiz", static.Page("quiz.html"))
	mux.Handle("GET /", static.Assets())
	mux.HandleFunc("POST /register", auth.Register)
	mux.HandleFunc("POST /login", auth.Login)

	// session
	mux.Handle("POST /api/logout", mw.RequireAuth(http.HandlerFunc(auth.Logout)))
	mux.Handle("GET /api/check-auth", mw.RequireAuth(http.HandlerFunc(auth.CheckAuth)))

	// members
	mux.Handle("GET /api/members", mw.RequireAuth(http.HandlerFunc(members.List)))
	mux.Handle("POST /api/members", mw.RequireAuth(http.HandlerFunc(members.Create)))
	mux.Handle("PUT /api/members/{id}", mw.RequireAuth(http.HandlerFunc(members.Update)))
	mux.Handle("DELETE /api/members/{id}", mw.RequireAuth(http.HandlerFunc(members.Delete)))

	// system parameters
	mux.Handle("GET /api/params", mw.RequireAuth(http.HandlerFunc(params.List)))
	mux.Handle("POST /api/params", mw.RequireAuth(http.HandlerFunc(params.Create)))
	mux.Handle("PUT /api/params/{id}", mw.RequireAuth(http.HandlerFunc(params.Update)))
	mux.Handle("DELETE /api/params/{id}", mw.RequireAuth(http.HandlerFunc(params.Delete)))

	// menus
	mux.Handle("GET /api/menus", mw.RequireAuth(http.HandlerFunc(menus.List)))
	mux.Handle("POST /api/menus", mw.RequireAuth(http.HandlerFunc(menus.Create)))
	mux.Handle("PUT /api/menus/{id}", mw.RequireAuth(http.HandlerFunc(menus.Update)))
	mux.Handle("DELETE /api/menus/{id}", mw.RequireAuth(http.HandlerFunc(menus.Delete)))

	// quiz
	mux.Handle("GET /api/quizzes", mw.RequireAuth(http.HandlerFunc(quiz.List)))
	mux.Handle("POST /api/quiz/check-answer", mw.RequireAuth(http.HandlerFunc(quiz.CheckAnswer)))

	return mux
}
