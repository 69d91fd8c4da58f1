package models

// ReviewModel is a visitor review left on a document.
type ReviewModel struct {
	Base
	DocumentID uint   `json:"document_id" gorm:"not null;index"`
	Author     string `json:"author"      gorm:"not null"`
	Content    string `json:"content"     gorm:"type:text;not null"`
}

func (ReviewModel) TableName() string { return "reviews" }
