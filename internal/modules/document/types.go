package document

import (
	"time"

	"github.com/dongne-wiki/core/internal/models"
)

// Locality is the gu/dong pair that scopes every list query. A document is
// only visible through the locality it was created in.
type Locality struct {
	Gu   string `json:"gu"`
	Dong string `json:"dong"`
}

func (l *Locality) Empty() bool {
	return l == nil || l.Gu == "" || l.Dong == ""
}

// SectionSnapshot is the readable state of one section: the section slot
// joined with its current revision.
type SectionSnapshot struct {
	SectionID   uint      `json:"section_id"`
	RevisionID  uint      `json:"revision_id"`
	Content     *string   `json:"content"`
	ContentHTML string    `json:"content_html"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created"`
}

// DetailDocument is the full document view: metadata, hashtags, reviews and
// the three named section snapshots. A snapshot is null when the section has
// no current revision.
type DetailDocument struct {
	models.DocumentModel
	Introduction   *SectionSnapshot `json:"introduction"`
	Feature        *SectionSnapshot `json:"feature"`
	AdditionalInfo *SectionSnapshot `json:"additional_info"`
}

// ListDocument is the list-view projection: metadata, hashtags and the
// introduction snapshot only.
type ListDocument struct {
	models.DocumentModel
	Introduction *SectionSnapshot `json:"introduction"`
}
