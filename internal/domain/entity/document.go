package entity

import (
	"time"

	"github.com/google/uuid"
)

// Accepted eligibility document MIME types.
const (
	MimeTypePDF  = "application/pdf"
	MimeTypePNG  = "image/png"
	MimeTypeJPEG = "image/jpeg"
)

// NonprofitDocument is a nonprofit's eligibility proof.
// Legacy rows carry the bytes inline in Data; current rows point at StoragePath.
type NonprofitDocument struct {
	ID          uuid.UUID `json:"id"`
	NonprofitID uuid.UUID `json:"nonprofitId"`
	FileName    string    `json:"fileName"`
	MimeType    string    `json:"mimeType"`
	Size        int64     `json:"size"`
	PageCount   int       `json:"pageCount,omitempty"`
	StoragePath string    `json:"-"`
	Data        []byte    `json:"-"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// IsInline reports whether the document predates blob storage.
func (d *NonprofitDocument) IsInline() bool {
	return len(d.Data) > 0
}
