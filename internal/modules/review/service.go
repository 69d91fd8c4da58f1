package review

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dongne-wiki/core/internal/models"
	"github.com/dongne-wiki/core/internal/pkg/pagination"
	"github.com/dongne-wiki/core/internal/pkg/response"
	"gorm.io/gorm"
)

var (
	errValidation       = errors.New("validation failed")
	errDocumentNotFound = errors.New("document not found")
)

// Service handles review submission and listing.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Submit stores a review for a document. The document must exist.
func (s *Service) Submit(documentID uint, dto *SubmitReviewDTO) (*models.ReviewModel, error) {
	dto.Author = strings.TrimSpace(dto.Author)
	dto.Content = strings.TrimSpace(dto.Content)
	if dto.Author == "" {
		return nil, fmt.Errorf("%w: author is required", errValidation)
	}
	if dto.Content == "" {
		return nil, fmt.Errorf("%w: content is required", errValidation)
	}

	var count int64
	if err := s.db.Model(&models.DocumentModel{}).Where("id = ?", documentID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errDocumentNotFound
	}

	review := models.ReviewModel{
		DocumentID: documentID,
		Author:     dto.Author,
		Content:    dto.Content,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByDocument returns a page of a document's reviews, newest first.
func (s *Service) ListByDocument(documentID uint, q pagination.Query) ([]models.ReviewModel, response.Pagination, error) {
	tx := s.db.Model(&models.ReviewModel{}).
		Where("document_id = ?", documentID).
		Order("created_at DESC, id DESC")

	var reviews []models.ReviewModel
	pg, err := pagination.Paginate(tx, q, &reviews)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	return reviews, pg, nil
}
