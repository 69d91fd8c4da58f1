package document

import (
	"errors"
	"strconv"
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
	g := rg.Group("/documents")

	g.GET("", h.list)
	g.GET("/popular", h.popular)
	g.GET("/:id", h.get)
	g.POST("", h.create)
	g.PUT("/:id/sections/:sectionId", h.reviseSection)
	g.GET("/:id/sections/:sectionId/revisions", h.sectionHistory)
}

func localityFromQuery(c *gin.Context) *Locality {
	gu := strings.TrimSpace(c.Query("gu"))
	dong := strings.TrimSpace(c.Query("dong"))
	if gu == "" || dong == "" {
		return nil
	}
	return &Locality{Gu: gu, Dong: dong}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

func parseLimit(c *gin.Context) int {
	v, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		return 0
	}
	return v
}

// GET /documents?gu=...&dong=...&category=...&limit=...
func (h *Handler) list(c *gin.Context) {
	var category *string
	if v := strings.TrimSpace(c.Query("category")); v != "" {
		category = &v
	}

	docs, err := h.svc.GetList(localityFromQuery(c), category, parseLimit(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, docs)
}

// GET /documents/popular?gu=...&dong=...&limit=...
func (h *Handler) popular(c *gin.Context) {
	docs, err := h.svc.GetPopular(c.Request.Context(), localityFromQuery(c), parseLimit(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, docs)
}

// GET /documents/:id
func (h *Handler) get(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "잘못된 문서 번호예요")
		return
	}

	doc, err := h.svc.GetDetail(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if doc == nil {
		response.NotFoundMsg(c, "문서가 존재하지 않아요")
		return
	}
	response.OK(c, doc)
}

// POST /documents
func (h *Handler) create(c *gin.Context) {
	var dto CreateDocumentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	id, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, errValidation) {
			response.UnprocessableEntity(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"id": id})
}

// PUT /documents/:id/sections/:sectionId
func (h *Handler) reviseSection(c *gin.Context) {
	docID, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "잘못된 문서 번호예요")
		return
	}
	sectionID, ok := parseUintParam(c, "sectionId")
	if !ok {
		response.BadRequest(c, "잘못된 섹션 번호예요")
		return
	}

	var dto ReviseSectionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	revisionID, err := h.svc.ReviseSection(docID, sectionID, &dto)
	if err != nil {
		switch {
		case errors.Is(err, errValidation):
			response.UnprocessableEntity(c, err.Error())
		case errors.Is(err, errSectionNotFound):
			response.NotFoundMsg(c, "섹션이 존재하지 않아요")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, gin.H{"revision_id": revisionID})
}

// GET /documents/:id/sections/:sectionId/revisions
func (h *Handler) sectionHistory(c *gin.Context) {
	docID, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "잘못된 문서 번호예요")
		return
	}
	sectionID, ok := parseUintParam(c, "sectionId")
	if !ok {
		response.BadRequest(c, "잘못된 섹션 번호예요")
		return
	}

	revisions, err := h.svc.SectionHistory(docID, sectionID)
	if err != nil {
		if errors.Is(err, errSectionNotFound) {
			response.NotFoundMsg(c, "섹션이 존재하지 않아요")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, revisions)
}
