package controllers

import (
	"encoding/json"
	"net/http"

	"quiz-portal/app/dto"
	"quiz-portal/app/middleware"
	"quiz-portal/app/models"
	"quiz-portal/app/services"
)

type MenuController struct{ Reference *services.ReferenceService }

func NewMenuController(reference *services.ReferenceService) *MenuController {
	return &MenuController{Reference: reference}
}

func menuFromRequest(req dto.MenuRequest) *models.MenuItem {
	return &models.MenuItem{
		ParentID:    req.ParentID,
		Name:        req.Name,
		Icon:        req.Icon,
		URL:         req.URL,
		VisibleFlag: req.VisibleFlag,
		NewTabFlag:  req.NewTabFlag,
		DisplaySeq:  req.DisplaySeq,
	}
}

func editorID(r *http.Request) uint {
	if account := middleware.GetAccount(r.Context()); account != nil {
		return account.ID
	}
	return 0
}

func (c *MenuController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.Reference.ListMenus()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (c *MenuController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.MenuRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	m := menuFromRequest(req)
	if err := c.Reference.CreateMenu(m, editorID(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (c *MenuController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req dto.MenuRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Reference.UpdateMenu(id, menuFromRequest(req), editorID(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "menu updated")
}

func (c *MenuController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := c.Reference.DeleteMenu(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "menu deleted")
}
