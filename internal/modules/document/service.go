package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dongne-wiki/core/internal/models"
	"github.com/dongne-wiki/core/internal/pkg/markdown"
	pkgredis "github.com/dongne-wiki/core/internal/pkg/redis"
	"gorm.io/gorm"
)

var (
	errValidation      = errors.New("validation failed")
	errSectionNotFound = errors.New("section not found")
)

const (
	defaultListLimit = 30
	maxListLimit     = 100
	popularCacheTTL  = 30 * time.Second
)

// Service handles document business logic: assembling read views and writing
// documents, sections and revisions.
type Service struct {
	db    *gorm.DB
	cache *pkgredis.Client
}

func NewService(db *gorm.DB, cache *pkgredis.Client) *Service {
	return &Service{db: db, cache: cache}
}

// GetDetail assembles the full document view. Returns (nil, nil) when the
// document does not exist.
func (s *Service) GetDetail(id uint) (*DetailDocument, error) {
	var doc models.DocumentModel
	err := s.db.
		Preload("Hashtags").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC, id DESC")
		}).
		Preload("Sections.CurrentRevision").
		First(&doc, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	detail := DetailDocument{DocumentModel: doc}
	for _, section := range doc.Sections {
		snapshot, err := snapshotOf(section)
		if err != nil {
			return nil, err
		}
		switch section.SectionKey {
		case models.SectionIntroduction:
			detail.Introduction = snapshot
		case models.SectionFeature:
			detail.Feature = snapshot
		case models.SectionAdditionalInfo:
			detail.AdditionalInfo = snapshot
		}
	}
	detail.Sections = nil
	return &detail, nil
}

// GetList returns documents in a locality, newest first, with the
// introduction snapshot and hashtags. An empty locality yields an empty
// slice without touching the store.
func (s *Service) GetList(loc *Locality, category *string, limit int) ([]ListDocument, error) {
	if loc.Empty() {
		return []ListDocument{}, nil
	}

	tx := s.db.Model(&models.DocumentModel{}).
		Preload("Hashtags").
		Preload("Sections", "section_key = ?", models.SectionIntroduction).
		Preload("Sections.CurrentRevision").
		Where("gu = ? AND dong = ?", loc.Gu, loc.Dong).
		Order("created_at DESC, id DESC").
		Limit(clampLimit(limit))
	if category != nil && strings.TrimSpace(*category) != "" {
		tx = tx.Where("category = ?", strings.TrimSpace(*category))
	}

	var docs []models.DocumentModel
	if err := tx.Find(&docs).Error; err != nil {
		return nil, err
	}

	items := make([]ListDocument, 0, len(docs))
	for _, doc := range docs {
		item := ListDocument{DocumentModel: doc}
		if len(doc.Sections) > 0 {
			snapshot, err := snapshotOf(doc.Sections[0])
			if err != nil {
				return nil, err
			}
			item.Introduction = snapshot
		}
		item.Sections = nil
		items = append(items, item)
	}
	return items, nil
}

// GetPopular returns the most-starred documents in a locality, cached briefly
// per (gu, dong, limit).
func (s *Service) GetPopular(ctx context.Context, loc *Locality, limit int) ([]models.DocumentModel, error) {
	if loc.Empty() {
		return []models.DocumentModel{}, nil
	}
	limit = clampLimit(limit)

	cacheKey := fmt.Sprintf("dw:popular:%s:%s:%d", loc.Gu, loc.Dong, limit)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			var docs []models.DocumentModel
			if err := json.Unmarshal([]byte(cached), &docs); err == nil {
				return docs, nil
			}
		}
	}

	var docs []models.DocumentModel
	err := s.db.
		Where("gu = ? AND dong = ?", loc.Gu, loc.Dong).
		Order("stars DESC, created_at DESC").
		Limit(limit).
		Find(&docs).Error
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(docs); err == nil {
			_ = s.cache.Set(ctx, cacheKey, payload, popularCacheTTL)
		}
	}
	return docs, nil
}

// Create validates the payload and writes the document, its three sections,
// their initial revisions and the hashtags in one transaction.
func (s *Service) Create(dto *CreateDocumentDTO) (uint, error) {
	if err := dto.Validate(); err != nil {
		return 0, err
	}

	contents := map[models.SectionKey]string{
		models.SectionIntroduction:   dto.Introduction,
		models.SectionFeature:        dto.Feature,
		models.SectionAdditionalInfo: dto.AdditionalInfo,
	}

	var docID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		doc := models.DocumentModel{
			Title:     dto.Title,
			CreatedBy: dto.CreatedBy,
			Location:  dto.Location,
			Gu:        dto.Gu,
			Dong:      dto.Dong,
			Category:  dto.Category,
			Stars:     0,
		}
		if err := tx.Create(&doc).Error; err != nil {
			return err
		}

		for _, key := range models.SectionKeys() {
			section := models.SectionModel{DocumentID: doc.ID, SectionKey: key}
			if err := tx.Create(&section).Error; err != nil {
				return err
			}
			revision := models.SectionRevisionModel{
				SectionID:  section.ID,
				DocumentID: doc.ID,
				Content:    contentPtr(contents[key]),
				CreatedBy:  doc.CreatedBy,
			}
			if err := tx.Create(&revision).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.SectionModel{}).
				Where("id = ?", section.ID).
				Update("current_revision_id", revision.ID).Error; err != nil {
				return err
			}
		}

		for _, tag := range dto.Hashtags {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			if err := tx.Create(&models.HashtagModel{DocumentID: doc.ID, Tag: tag}).Error; err != nil {
				return err
			}
		}

		docID = doc.ID
		return nil
	})
	return docID, err
}

// ReviseSection appends a revision to a section and repoints the current
// revision. The previous revisions stay untouched.
func (s *Service) ReviseSection(documentID, sectionID uint, dto *ReviseSectionDTO) (uint, error) {
	author := strings.TrimSpace(dto.CreatedBy)
	if author == "" {
		return 0, fmt.Errorf("%w: created_by is required", errValidation)
	}

	var revisionID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var section models.SectionModel
		if err := tx.First(&section, "id = ? AND document_id = ?", sectionID, documentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errSectionNotFound
			}
			return err
		}

		revision := models.SectionRevisionModel{
			SectionID:  section.ID,
			DocumentID: documentID,
			Content:    contentPtr(dto.Content),
			CreatedBy:  author,
		}
		if err := tx.Create(&revision).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.SectionModel{}).
			Where("id = ?", section.ID).
			Update("current_revision_id", revision.ID).Error; err != nil {
			return err
		}

		revisionID = revision.ID
		return nil
	})
	return revisionID, err
}

// SectionHistory returns every revision of a section, oldest first.
func (s *Service) SectionHistory(documentID, sectionID uint) ([]models.SectionRevisionModel, error) {
	var section models.SectionModel
	if err := s.db.First(&section, "id = ? AND document_id = ?", sectionID, documentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errSectionNotFound
		}
		return nil, err
	}

	var revisions []models.SectionRevisionModel
	err := s.db.
		Where("section_id = ?", sectionID).
		Order("created_at ASC, id ASC").
		Find(&revisions).Error
	return revisions, err
}

func snapshotOf(section models.SectionModel) (*SectionSnapshot, error) {
	if section.CurrentRevision == nil {
		return nil, nil
	}
	rev := section.CurrentRevision

	var html string
	if rev.Content != nil {
		rendered, err := markdown.Render(*rev.Content)
		if err != nil {
			return nil, err
		}
		html = rendered
	}

	return &SectionSnapshot{
		SectionID:   section.ID,
		RevisionID:  rev.ID,
		Content:     rev.Content,
		ContentHTML: html,
		CreatedBy:   rev.CreatedBy,
		CreatedAt:   rev.CreatedAt,
	}, nil
}

func contentPtr(raw string) *string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return &raw
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
