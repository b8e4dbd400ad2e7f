package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dermaglow/internal/app"
	"dermaglow/internal/model"
	"dermaglow/internal/transport/http/response"
)

type ClinicHandler struct {
	clinicService *app.ClinicService
}

type ClinicRequest struct {
	Name    string               `json:"name"`
	Rating  float64              `json:"rating"`
	Address string               `json:"address"`
	Phone   string               `json:"phone"`
	Lat     float64              `json:"lat"`
	Lng     float64              `json:"lng"`
	Hours   []model.ClinicHours  `json:"hours"`
	Doctors []model.ClinicDoctor `json:"doctors"`
}

func NewClinicHandler(clinicService *app.ClinicService) *ClinicHandler {
	return &ClinicHandler{clinicService: clinicService}
}

func (h *ClinicHandler) Create(c *gin.Context) {
	var req ClinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	clinic := req.toModel()
	if err := h.clinicService.Create(&clinic); err != nil {
		h.writeClinicError(c, err, "create clinic failed")
		return
	}
	response.OK(c, clinic)
}

func (h *ClinicHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	result, err := h.clinicService.List(page, limit)
	if err != nil {
		h.writeClinicError(c, err, "list clinics failed")
		return
	}
	response.OK(c, result)
}

func (h *ClinicHandler) Get(c *gin.Context) {
	id, ok := clinicIDFromParam(c)
	if !ok {
		return
	}

	clinic, err := h.clinicService.Get(id)
	if err != nil {
		h.writeClinicError(c, err, "get clinic failed")
		return
	}
	response.OK(c, clinic)
}

func (h *ClinicHandler) Update(c *gin.Context) {
	id, ok := clinicIDFromParam(c)
	if !ok {
		return
	}

	var req ClinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	updated := req.toModel()
	clinic, err := h.clinicService.Update(id, &updated)
	if err != nil {
		h.writeClinicError(c, err, "update clinic failed")
		return
	}
	response.OK(c, clinic)
}

func (h *ClinicHandler) Delete(c *gin.Context) {
	id, ok := clinicIDFromParam(c)
	if !ok {
		return
	}

	if err := h.clinicService.Delete(id); err != nil {
		h.writeClinicError(c, err, "delete clinic failed")
		return
	}
	response.OK(c, gin.H{"deleted_clinic_id": id})
}

func (h *ClinicHandler) writeClinicError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	case errors.Is(err, app.ErrClinicNotFound):
		response.Error(c, http.StatusNotFound, response.CodeClinicNotFound, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, fallback)
	}
}

func (r ClinicRequest) toModel() model.Clinic {
	return model.Clinic{
		Name:    r.Name,
		Rating:  r.Rating,
		Address: r.Address,
		Phone:   r.Phone,
		Lat:     r.Lat,
		Lng:     r.Lng,
		Hours:   r.Hours,
		Doctors: r.Doctors,
	}
}

func clinicIDFromParam(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id64 == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid clinic id")
		return 0, false
	}
	return uint(id64), true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
