package ai

import (
	"github.com/dongne-wiki/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// SuggestHashtagsDTO carries the draft fields the suggestion runs on.
type SuggestHashtagsDTO struct {
	Title          string `json:"title"`
	Introduction   string `json:"introduction"`
	Feature        string `json:"feature"`
	AdditionalInfo string `json:"additional_info"`
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ai/hashtags", h.suggestHashtags)
}

// POST /ai/hashtags
func (h *Handler) suggestHashtags(c *gin.Context) {
	var dto SuggestHashtagsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tags := h.svc.SuggestHashtags(c.Request.Context(), dto.Title, dto.Introduction, dto.Feature, dto.AdditionalInfo)
	response.OK(c, gin.H{"hashtags": tags})
}
