package review

import (
	"errors"
	"strconv"

	"github.com/dongne-wiki/core/internal/pkg/pagination"
	"github.com/dongne-wiki/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// SubmitReviewDTO is the payload for leaving a review on a document.
type SubmitReviewDTO struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/:id/reviews", h.submit)
	rg.GET("/documents/:id/reviews", h.list)
}

func (h *Handler) documentID(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "잘못된 문서 번호예요")
		return 0, false
	}
	return uint(v), true
}

// POST /documents/:id/reviews
func (h *Handler) submit(c *gin.Context) {
	docID, ok := h.documentID(c)
	if !ok {
		return
	}

	var dto SubmitReviewDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review, err := h.svc.Submit(docID, &dto)
	if err != nil {
		switch {
		case errors.Is(err, errValidation):
			response.UnprocessableEntity(c, err.Error())
		case errors.Is(err, errDocumentNotFound):
			response.NotFoundMsg(c, "문서가 존재하지 않아요")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, review)
}

// GET /documents/:id/reviews
func (h *Handler) list(c *gin.Context) {
	docID, ok := h.documentID(c)
	if !ok {
		return
	}

	reviews, pg, err := h.svc.ListByDocument(docID, pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, reviews, pg)
}
