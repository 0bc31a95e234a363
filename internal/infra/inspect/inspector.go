// Package inspect validates uploaded nonprofit documents before they are stored.
package inspect

import (
	"bytes"
	"fmt"

	"foodbridge/config"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
)

const (
	mimePDF  = "application/pdf"
	mimePNG  = "image/png"
	mimeJPEG = "image/jpeg"
)

type inspector struct {
	maxImageBytes int64
	maxPDFBytes   int64
}

// NewDocumentInspector sniffs content by magic bytes, never by the client's filename or header.
func NewDocumentInspector(cfg *config.Config) service.DocumentInspector {
	insp := &inspector{maxImageBytes: 5 << 20, maxPDFBytes: 10 << 20}
	if cfg.Documents != nil {
		if cfg.Documents.MaxImageBytes > 0 {
			insp.maxImageBytes = cfg.Documents.MaxImageBytes
		}
		if cfg.Documents.MaxPDFBytes > 0 {
			insp.maxPDFBytes = cfg.Documents.MaxPDFBytes
		}
	}

	return insp
}

func (i *inspector) Inspect(data []byte) (*service.DocumentInfo, error) {
	if len(data) == 0 {
		return nil, domainerrors.ErrInvalidFileType.WithDetails("empty file")
	}

	mime := mimetype.Detect(data)
	switch {
	case mime.Is(mimePDF):
		if int64(len(data)) > i.maxPDFBytes {
			return nil, domainerrors.ErrFileTooLarge.WithDetails(fmt.Sprintf("PDF limit is %d bytes", i.maxPDFBytes))
		}
		pages, err := countPages(data)
		if err != nil {
			return nil, domainerrors.ErrInvalidFileType.WithDetails("unreadable PDF")
		}

		return &service.DocumentInfo{MimeType: mimePDF, Extension: ".pdf", PageCount: pages}, nil

	case mime.Is(mimePNG), mime.Is(mimeJPEG):
		if int64(len(data)) > i.maxImageBytes {
			return nil, domainerrors.ErrFileTooLarge.WithDetails(fmt.Sprintf("image limit is %d bytes", i.maxImageBytes))
		}

		return &service.DocumentInfo{MimeType: mime.String(), Extension: mime.Extension(), PageCount: 1}, nil

	default:
		return nil, domainerrors.ErrInvalidFileType.WithDetails("detected " + mime.String())
	}
}

// countPages parses the PDF cross-reference table and page tree.
func countPages(data []byte) (pages int, err error) {
	// ledongthuc/pdf panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("pdf parser panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, errors.Wrap(err, "new pdf reader")
	}

	pages = reader.NumPage()
	if pages == 0 {
		return 0, errors.New("pdf has no pages")
	}

	return pages, nil
}
