package favorite

import (
	"errors"

	"github.com/dongne-wiki/core/internal/models"
	"gorm.io/gorm"
)

var errDocumentNotFound = errors.New("document not found")

// Service toggles favorites: the session set and the document's star counter
// move together. Counter updates run store-side so concurrent toggles never
// lose an increment, and the counter never drops below zero.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Mark adds a document to the session's favorites and increments its star
// counter. Marking an already-favorited document changes nothing.
func (s *Service) Mark(sess *Session, documentID uint) error {
	if !sess.Add(documentID) {
		return nil
	}

	res := s.db.Model(&models.DocumentModel{}).
		Where("id = ?", documentID).
		UpdateColumn("stars", gorm.Expr("stars + 1"))
	if res.Error != nil {
		sess.Remove(documentID)
		return res.Error
	}
	if res.RowsAffected == 0 {
		sess.Remove(documentID)
		return errDocumentNotFound
	}
	return nil
}

// Unmark removes a document from the session's favorites and decrements its
// star counter, clamped at zero. Unmarking a non-favorited document changes
// nothing.
func (s *Service) Unmark(sess *Session, documentID uint) error {
	if !sess.Remove(documentID) {
		return nil
	}

	res := s.db.Model(&models.DocumentModel{}).
		Where("id = ? AND stars > 0", documentID).
		UpdateColumn("stars", gorm.Expr("stars - 1"))
	if res.Error != nil {
		sess.Add(documentID)
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Either the document is gone or the counter already sits at zero.
		var count int64
		if err := s.db.Model(&models.DocumentModel{}).Where("id = ?", documentID).Count(&count).Error; err != nil {
			sess.Add(documentID)
			return err
		}
		if count == 0 {
			sess.Add(documentID)
			return errDocumentNotFound
		}
	}
	return nil
}

// List returns the session's favorited documents that still exist.
func (s *Service) List(sess *Session) ([]models.DocumentModel, error) {
	ids := sess.IDs()
	if len(ids) == 0 {
		return []models.DocumentModel{}, nil
	}

	var docs []models.DocumentModel
	err := s.db.Where("id IN ?", ids).Order("created_at DESC, id DESC").Find(&docs).Error
	return docs, err
}
