package models

// HashtagModel is a single tag attached to a document.
type HashtagModel struct {
	Base
	DocumentID uint   `json:"document_id" gorm:"not null;index"`
	Tag        string `json:"tag"         gorm:"not null"`
}

func (HashtagModel) TableName() string { return "hashtags" }
