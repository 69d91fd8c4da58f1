package models

// DocumentModel is an encyclopedia entry about a place in a neighborhood.
// Gu and Dong scope the document to a locality; every list query filters on them.
type DocumentModel struct {
	Base
	Title     string  `json:"title"      gorm:"not null"`
	CreatedBy string  `json:"created_by" gorm:"not null"`
	Location  string  `json:"location"   gorm:"not null"`
	Gu        string  `json:"gu"         gorm:"not null;index:idx_documents_gu_dong"`
	Dong      string  `json:"dong"       gorm:"not null;index:idx_documents_gu_dong"`
	Category  *string `json:"category"`
	Stars     int     `json:"stars"      gorm:"not null;default:0"`

	Sections []SectionModel `json:"sections,omitempty" gorm:"foreignKey:DocumentID"`
	Hashtags []HashtagModel `json:"hashtags,omitempty" gorm:"foreignKey:DocumentID"`
	Reviews  []ReviewModel  `json:"reviews,omitempty"  gorm:"foreignKey:DocumentID"`
}

func (DocumentModel) TableName() string { return "documents" }
