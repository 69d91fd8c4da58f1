package favorite

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dongne-wiki/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const deviceIDHeader = "X-Device-ID"

// LocalityDTO is the payload for selecting the session's gu/dong.
type LocalityDTO struct {
	Gu   string `json:"gu"`
	Dong string `json:"dong"`
}

type Handler struct {
	svc   *Service
	store *Store
}

func NewHandler(svc *Service, store *Store) *Handler {
	return &Handler{svc: svc, store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/documents/:id/favorite", h.mark)
	rg.DELETE("/documents/:id/favorite", h.unmark)
	rg.GET("/favorites", h.list)
	rg.PUT("/location", h.setLocation)
	rg.GET("/location", h.getLocation)
}

// session resolves the caller's session from the device id header, issuing a
// fresh id when the client has none yet. The id is echoed back so the client
// can persist it.
func (h *Handler) session(c *gin.Context) *Session {
	deviceID := strings.TrimSpace(c.GetHeader(deviceIDHeader))
	if deviceID == "" {
		deviceID = uuid.New().String()
	}
	c.Header(deviceIDHeader, deviceID)
	return h.store.Session(deviceID)
}

func (h *Handler) documentID(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "잘못된 문서 번호예요")
		return 0, false
	}
	return uint(v), true
}

// PUT /documents/:id/favorite
func (h *Handler) mark(c *gin.Context) {
	docID, ok := h.documentID(c)
	if !ok {
		return
	}

	sess := h.session(c)
	if err := h.svc.Mark(sess, docID); err != nil {
		if errors.Is(err, errDocumentNotFound) {
			response.NotFoundMsg(c, "문서가 존재하지 않아요")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"favorited": true})
}

// DELETE /documents/:id/favorite
func (h *Handler) unmark(c *gin.Context) {
	docID, ok := h.documentID(c)
	if !ok {
		return
	}

	sess := h.session(c)
	if err := h.svc.Unmark(sess, docID); err != nil {
		if errors.Is(err, errDocumentNotFound) {
			response.NotFoundMsg(c, "문서가 존재하지 않아요")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"favorited": false})
}

// GET /favorites
func (h *Handler) list(c *gin.Context) {
	docs, err := h.svc.List(h.session(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, docs)
}

// PUT /location
func (h *Handler) setLocation(c *gin.Context) {
	var dto LocalityDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	dto.Gu = strings.TrimSpace(dto.Gu)
	dto.Dong = strings.TrimSpace(dto.Dong)
	if dto.Gu == "" || dto.Dong == "" {
		response.UnprocessableEntity(c, "gu와 dong을 모두 선택해 주세요")
		return
	}

	h.session(c).SetLocality(dto.Gu, dto.Dong)
	response.OK(c, dto)
}

// GET /location
func (h *Handler) getLocation(c *gin.Context) {
	gu, dong := h.session(c).Locality()
	response.OK(c, LocalityDTO{Gu: gu, Dong: dong})
}
