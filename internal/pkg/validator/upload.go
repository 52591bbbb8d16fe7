package validator

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/futig/resignation-backend/internal/config"
	"github.com/futig/resignation-backend/internal/entity"
)

var kindLabels = map[entity.DocumentKind]string{
	entity.DocumentKindContract:    "PDF",
	entity.DocumentKindResignation: ".eml",
}

// Validator validates file uploads
type Validator struct {
	cfg config.FileUploadConfig
}

func NewFileValidator(cfg config.FileUploadConfig) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateUpload checks that file is present, carries the extension
// expected for kind and fits the size limit.
func (v *Validator) ValidateUpload(file *multipart.FileHeader, kind entity.DocumentKind) error {
	if file == nil {
		return fmt.Errorf("%w: file", entity.ErrMissingField)
	}

	if err := ValidateFilename(file.Filename, kind); err != nil {
		return err
	}

	if file.Size > v.cfg.MaxFileSize {
		return fmt.Errorf("%w: file '%s' is %d bytes (max %d)", entity.ErrFileTooLarge, file.Filename, file.Size, v.cfg.MaxFileSize)
	}

	if file.Size == 0 {
		return fmt.Errorf("%w: %s", entity.ErrEmptyFile, file.Filename)
	}

	return nil
}

// ValidateFilename checks the extension case-insensitively.
func ValidateFilename(filename string, kind entity.DocumentKind) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != kind.Extension() {
		return fmt.Errorf("%w: only %s files are supported", entity.ErrInvalidExtension, kindLabels[kind])
	}
	return nil
}

// ValidateSize checks an in-memory document against the size limit.
func (v *Validator) ValidateSize(filename string, size int64) error {
	if size > v.cfg.MaxFileSize {
		return fmt.Errorf("%w: file '%s' is %d bytes (max %d)", entity.ErrFileTooLarge, filename, size, v.cfg.MaxFileSize)
	}
	if size == 0 {
		return fmt.Errorf("%w: %s", entity.ErrEmptyFile, filename)
	}
	return nil
}

// SanitizeFilename strips directories and characters unsafe for logs.
func SanitizeFilename(filename string) string {
	filename = filepath.Base(filename)
	replacer := strings.NewReplacer(
		" ", "_",
		"(", "",
		")", "",
		"[", "",
		"]", "",
		"{", "",
		"}", "",
	)
	return replacer.Replace(filename)
}

// ReadFile loads an uploaded file into memory.
func (v *Validator) ReadFile(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", file.Filename, err)
	}
	defer src.Close()

	content, err := io.ReadAll(io.LimitReader(src, v.cfg.MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", file.Filename, err)
	}

	if err := v.ValidateSize(file.Filename, int64(len(content))); err != nil {
		return nil, err
	}
	return content, nil
}
