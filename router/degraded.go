package router

import (
	"encoding/json"
	"net/http"

	"quiz-portal/app/controllers"
	"quiz-portal/app/dto"
)

// NewDegraded serves only the static pages when storage failed at startup.
// Every data route answers 500 with the underlying failure so operators see
// why the API is down without the process exiting.
func NewDegraded(static *controllers.StaticController, cause error) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", static.Page("index.html"))
	mux.HandleFunc("GET /dashboard", static.Page("dashboard.html"))
	mux.HandleFunc("GET /quiz", static.Page("quiz.html"))
	mux.Handle("GET /", static.Assets())

	unavailable := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(dto.MessageResponse{Message: cause.Error()})
	}
	mux.HandleFunc("POST /register", unavailable)
	mux.HandleFunc("POST /login", unavailable)
	mux.HandleFunc("/api/", unavailable)

	return mux
}
