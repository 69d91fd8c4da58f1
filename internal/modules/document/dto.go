package document

import (
	"fmt"
	"strings"
)

// CreateDocumentDTO is the payload for creating a document with its three
// sections and hashtags in one call.
type CreateDocumentDTO struct {
	Title          string   `json:"title"`
	CreatedBy      string   `json:"created_by"`
	Location       string   `json:"location"`
	Gu             string   `json:"gu"`
	Dong           string   `json:"dong"`
	Category       *string  `json:"category"`
	Introduction   string   `json:"introduction"`
	Feature        string   `json:"feature"`
	AdditionalInfo string   `json:"additional_info"`
	Hashtags       []string `json:"hashtags"`
}

// Validate checks required fields after trimming. Category and section
// contents may be empty.
func (dto *CreateDocumentDTO) Validate() error {
	dto.Title = strings.TrimSpace(dto.Title)
	dto.CreatedBy = strings.TrimSpace(dto.CreatedBy)
	dto.Location = strings.TrimSpace(dto.Location)
	dto.Gu = strings.TrimSpace(dto.Gu)
	dto.Dong = strings.TrimSpace(dto.Dong)

	for field, value := range map[string]string{
		"title":      dto.Title,
		"created_by": dto.CreatedBy,
		"location":   dto.Location,
		"gu":         dto.Gu,
		"dong":       dto.Dong,
	} {
		if value == "" {
			return fmt.Errorf("%w: %s is required", errValidation, field)
		}
	}
	return nil
}

// ReviseSectionDTO is the payload for appending a revision to a section.
type ReviseSectionDTO struct {
	Content   string `json:"content"`
	CreatedBy string `json:"created_by"`
}
