package controllers

import (
	"encoding/json"
	"net/http"

	"quiz-portal/app/dto"
	"quiz-portal/app/models"
	"quiz-portal/app/services"
)

type ParamController struct{ Reference *services.ReferenceService }

func NewParamController(reference *services.ReferenceService) *ParamController {
	return &ParamController{Reference: reference}
}

func paramFromRequest(req dto.SystemParamRequest) *models.SystemParam {
	return &models.SystemParam{
		ParamCode:  req.ParamCode,
		ParamValue: req.ParamValue,
		ParamDesc:  req.ParamDesc,
		SysFlag:    req.SysFlag,
	}
}

func (c *ParamController) List(w http.ResponseWriter, r *http.Request) {
	params, err := c.Reference.ListParams()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, params)
}

func (c *ParamController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SystemParamRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	p := paramFromRequest(req)
	if err := c.Reference.CreateParam(p); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (c *ParamController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req dto.SystemParamRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if err := c.Reference.UpdateParam(id, paramFromRequest(req)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "parameter updated")
}

func (c *ParamController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := c.Reference.DeleteParam(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "parameter deleted")
}
