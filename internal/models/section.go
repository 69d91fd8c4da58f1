package models

// SectionKey identifies one of the three fixed content slots of a document.
type SectionKey string

const (
	SectionIntroduction   SectionKey = "introduction"
	SectionFeature        SectionKey = "feature"
	SectionAdditionalInfo SectionKey = "additionalInfo"
)

// SectionKeys returns all keys in canonical order. Every document carries
// exactly one section per key.
func SectionKeys() []SectionKey {
	return []SectionKey{SectionIntroduction, SectionFeature, SectionAdditionalInfo}
}

func (k SectionKey) Valid() bool {
	switch k {
	case SectionIntroduction, SectionFeature, SectionAdditionalInfo:
		return true
	}
	return false
}

// SectionModel is a named content slot on a document. The slot itself holds no
// text; CurrentRevisionID points at the revision whose content is visible.
type SectionModel struct {
	Base
	DocumentID        uint                  `json:"document_id"         gorm:"not null;uniqueIndex:idx_sections_document_key"`
	SectionKey        SectionKey            `json:"section_key"         gorm:"not null;uniqueIndex:idx_sections_document_key"`
	CurrentRevisionID *uint                 `json:"current_revision_id"`
	CurrentRevision   *SectionRevisionModel `json:"current_revision,omitempty" gorm:"foreignKey:CurrentRevisionID"`
}

func (SectionModel) TableName() string { return "sections" }

// SectionRevisionModel is one append-only edit of a section. DocumentID is
// denormalized so history queries skip a join.
type SectionRevisionModel struct {
	Base
	SectionID  uint    `json:"section_id"  gorm:"not null;index"`
	DocumentID uint    `json:"document_id" gorm:"not null;index"`
	Content    *string `json:"content"     gorm:"type:text"`
	CreatedBy  string  `json:"created_by"  gorm:"not null"`
}

func (SectionRevisionModel) TableName() string { return "section_revisions" }
