package geocode

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dongne-wiki/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/geocode", h.lookup)
	rg.GET("/geocode/reverse", h.reverseLookup)
}

// GET /geocode?query=...
func (h *Handler) lookup(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		response.BadRequest(c, "query parameter is required")
		return
	}

	payload, err := h.svc.Lookup(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, errUpstream) {
			response.BadGateway(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", payload)
}

// GET /geocode/reverse?coords=...&orders=...
func (h *Handler) reverseLookup(c *gin.Context) {
	coords := strings.TrimSpace(c.Query("coords"))
	if coords == "" {
		response.BadRequest(c, "coords parameter is required")
		return
	}

	payload, err := h.svc.ReverseLookup(c.Request.Context(), coords, strings.TrimSpace(c.Query("orders")))
	if err != nil {
		if errors.Is(err, errUpstream) {
			response.BadGateway(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", payload)
}
