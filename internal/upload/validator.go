// Package upload validates and stores uploaded overlay media files.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// MaxUploadBytes is the size ceiling for a single uploaded image
const MaxUploadBytes = 16 << 20 // 16 MiB

// sniffLen is how many leading bytes are needed for content-type detection
const sniffLen = 512

// Upload validation errors
var (
	// ErrNoFile indicates the request carried no file
	ErrNoFile = errors.New("no file provided")

	// ErrNotImage indicates the file content is not a recognized image format
	ErrNotImage = errors.New("file is not an image")

	// ErrTooLarge indicates the file exceeds the upload size ceiling
	ErrTooLarge = errors.New("file exceeds maximum upload size")
)

// ValidationResult describes why an upload was accepted or rejected
type ValidationResult struct {
	Accepted    bool
	ContentType string // Detected content type (from file bytes, not headers)
	Reason      string // Human-readable rejection reason
}

// ValidateImage checks an uploaded file before it is stored: the declared
// size must be under the ceiling and the leading bytes must sniff as an
// image. The client-sent Content-Type header is not trusted.
func ValidateImage(header *multipart.FileHeader) (ValidationResult, error) {
	if header == nil || header.Filename == "" {
		return ValidationResult{Reason: "no file selected"}, ErrNoFile
	}

	if header.Size > MaxUploadBytes {
		return ValidationResult{
			Reason: fmt.Sprintf("file is %d bytes, limit is %d", header.Size, MaxUploadBytes),
		}, ErrTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return ValidationResult{Reason: "file could not be read"}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	buf := make([]byte, sniffLen)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return ValidationResult{Reason: "file could not be read"}, fmt.Errorf("failed to read upload: %w", err)
	}

	contentType := http.DetectContentType(buf[:n])
	if !strings.HasPrefix(contentType, "image/") {
		return ValidationResult{
			ContentType: contentType,
			Reason:      "content type '" + contentType + "' is not an image",
		}, ErrNotImage
	}

	return ValidationResult{Accepted: true, ContentType: contentType}, nil
}
