package controllers

import (
	"encoding/json"
	"net/http"

	"quiz-portal/app/dto"
	"quiz-portal/app/middleware"
	"quiz-portal/app/services"
)

type AuthController struct{ Accounts *services.AccountService }

func NewAuthController(accounts *services.AccountService) *AuthController {
	return &AuthController{Accounts: accounts}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	id, err := c.Accounts.Register(req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.RegisterResponse{Message: "registration successful", UserID: id})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	account, token, err := c.Accounts.Login(req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.LoginResponse{Message: "login successful", Username: account.Username, Token: token})
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	account := middleware.GetAccount(r.Context())
	if account == nil {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}
	if err := c.Accounts.Logout(account.ID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "logged out")
}

func (c *AuthController) CheckAuth(w http.ResponseWriter, r *http.Request) {
	account := middleware.GetAccount(r.Context())
	if account == nil {
		writeMessage(w, http.StatusUnauthorized, "authentication required")
		return
	}
	writeJSON(w, http.StatusOK, dto.CheckAuthResponse{IsAuthenticated: true, Username: account.Username})
}
