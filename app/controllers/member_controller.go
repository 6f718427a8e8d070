package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"quiz-portal/app/dto"
	"quiz-portal/app/services"
)

type MemberController struct{ Accounts *services.AccountService }

func NewMemberController(accounts *services.AccountService) *MemberController {
	return &MemberController{Accounts: accounts}
}

func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (c *MemberController) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := c.Accounts.ListMembers()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	members := make([]dto.MemberResponse, 0, len(accounts))
	for _, a := range accounts {
		members = append(members, dto.MemberResponse{ID: a.ID, Username: a.Username})
	}
	writeJSON(w, http.StatusOK, members)
}

func (c *MemberController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.MemberRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	id, err := c.Accounts.CreateMember(req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.MemberResponse{ID: id, Username: req.Username})
}

func (c *MemberController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req dto.MemberRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Accounts.UpdateMember(id, req.Username, req.Password); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "member updated")
}

func (c *MemberController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := c.Accounts.DeleteMember(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "member deleted")
}
