package summary

import (
	"path/filepath"
	"strings"

	"studymate/internal/domain"

	"github.com/gabriel-vasile/mimetype"
)

const pdfMIME = "application/pdf"

// Source tells how a file reached the page.
type Source string

const (
	// SourceDrop is a drag-and-drop; the declared content type is checked.
	SourceDrop Source = "drop"
	// SourceBrowse is the file picker; the extension is checked.
	SourceBrowse Source = "browse"
)

func ParseSource(s string) (Source, bool) {
	switch Source(strings.ToLower(s)) {
	case SourceDrop:
		return SourceDrop, true
	case SourceBrowse, "":
		return SourceBrowse, true
	}
	return "", false
}

// Inspect decides whether file may be selected. Besides the check that
// depends on src, the payload itself has to sniff as a PDF and fit maxBytes.
func Inspect(file domain.UploadedFile, src Source, maxBytes int64) error {
	if file.Name == "" {
		return domain.NewInvalidInputError("file name is required")
	}
	if maxBytes > 0 && file.Size > maxBytes {
		return domain.NewFileTooLargeError(file.Size, maxBytes)
	}

	switch src {
	case SourceDrop:
		if !strings.EqualFold(mediaType(file.ContentType), pdfMIME) {
			return domain.NewUnsupportedFileError(file.Name, file.ContentType)
		}
	default:
		if !strings.EqualFold(filepath.Ext(file.Name), ".pdf") {
			return domain.NewUnsupportedFileError(file.Name, file.ContentType)
		}
	}

	detected := mimetype.Detect(file.Content)
	if !detected.Is(pdfMIME) {
		return domain.NewUnsupportedFileError(file.Name, detected.String())
	}
	return nil
}

// mediaType strips parameters such as "; charset=binary".
func mediaType(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.TrimSpace(contentType)
}
