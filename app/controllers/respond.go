package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"quiz-portal/app/dto"
	"quiz-portal/app/repo"
	"quiz-portal/app/services"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.MessageResponse{Message: msg})
}

// writeServiceError maps service sentinels onto statuses; anything
// unrecognised is a storage failure and its message passes through as a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, "missing required fields")
	case errors.Is(err, services.ErrDuplicateUsername):
		writeMessage(w, http.StatusConflict, "username already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "invalid username or password")
	case errors.Is(err, services.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "not found")
	case errors.Is(err, repo.ErrLastAccount):
		writeMessage(w, http.StatusBadRequest, "cannot delete the last remaining account")
	default:
		writeMessage(w, http.StatusInternalServerError, err.Error())
	}
}
