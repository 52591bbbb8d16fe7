package validator

import (
	"errors"
	"mime/multipart"
	"testing"

	"github.com/futig/resignation-backend/internal/config"
	"github.com/futig/resignation-backend/internal/entity"
)

func TestValidateUpload(t *testing.T) {
	v := NewFileValidator(config.FileUploadConfig{MaxFileSize: 100, MaxUploadSize: 200})

	cases := []struct {
		name string
		file *multipart.FileHeader
		kind entity.DocumentKind
		want error
	}{
		{name: "pdf", file: &multipart.FileHeader{Filename: "contract.pdf", Size: 10}, kind: entity.DocumentKindContract},
		{name: "upper case pdf", file: &multipart.FileHeader{Filename: "CONTRACT.PDF", Size: 10}, kind: entity.DocumentKindContract},
		{name: "eml", file: &multipart.FileHeader{Filename: "resign.eml", Size: 10}, kind: entity.DocumentKindResignation},
		{name: "docx as contract", file: &multipart.FileHeader{Filename: "contract.docx", Size: 10}, kind: entity.DocumentKindContract, want: entity.ErrInvalidExtension},
		{name: "pdf as resignation", file: &multipart.FileHeader{Filename: "resign.pdf", Size: 10}, kind: entity.DocumentKindResignation, want: entity.ErrInvalidExtension},
		{name: "too large", file: &multipart.FileHeader{Filename: "contract.pdf", Size: 101}, kind: entity.DocumentKindContract, want: entity.ErrFileTooLarge},
		{name: "empty", file: &multipart.FileHeader{Filename: "contract.pdf"}, kind: entity.DocumentKindContract, want: entity.ErrEmptyFile},
		{name: "missing", kind: entity.DocumentKindContract, want: entity.ErrMissingField},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateUpload(tc.file, tc.kind)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateFilenameMessage(t *testing.T) {
	err := ValidateFilename("notes.txt", entity.DocumentKindResignation)
	if err == nil || err.Error() != "invalid file extension: only .eml files are supported" {
		t.Fatalf("unexpected error %v", err)
	}
}
