package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dermaglow/internal/app"
	"dermaglow/internal/transport/http/response"
)

type RecommendationHandler struct {
	recommendationService *app.RecommendationService
}

func NewRecommendationHandler(recommendationService *app.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// Weather serves GET /recommendations/weather?city= or ?lat=&lng=.
func (h *RecommendationHandler) Weather(c *gin.Context) {
	ctx := c.Request.Context()

	if city := c.Query("city"); city != "" {
		result, err := h.recommendationService.ByCity(ctx, city)
		if err != nil {
			h.writeRecommendationError(c, err)
			return
		}
		response.OK(c, result)
		return
	}

	latRaw, lngRaw := c.Query("lat"), c.Query("lng")
	if latRaw == "" || lngRaw == "" {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "provide either lat/lng or city")
		return
	}

	lat, latErr := strconv.ParseFloat(latRaw, 64)
	lng, lngErr := strconv.ParseFloat(lngRaw, 64)
	if latErr != nil || lngErr != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid coordinates")
		return
	}

	result, err := h.recommendationService.ByCoordinates(ctx, lat, lng)
	if err != nil {
		h.writeRecommendationError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *RecommendationHandler) writeRecommendationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, err.Error())
	case errors.Is(err, app.ErrUpstream):
		response.Error(c, http.StatusBadGateway, response.CodeUpstreamFailed, "failed to generate recommendations")
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "weather recommendation failed")
	}
}
