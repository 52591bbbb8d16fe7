// Package pdf turns uploaded contract PDFs into plain text.
package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/futig/resignation-backend/internal/entity"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	ledongthuc "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"
)

// PageSeparator joins the text of consecutive pages.
const PageSeparator = " "

// Extractor reads PDFs from a private temporary directory that is removed
// before Extract returns.
type Extractor struct {
	tempDir string
}

// NewExtractor creates an extractor writing under tempDir, or the system
// temp dir when empty.
func NewExtractor(tempDir string) *Extractor {
	api.DisableConfigDir()
	return &Extractor{tempDir: tempDir}
}

// Extract returns the text of all pages in order.
func (e *Extractor) Extract(ctx context.Context, content []byte) (string, error) {
	if len(content) == 0 {
		return "", entity.ErrEmptyFile
	}

	dir, err := os.MkdirTemp(e.tempDir, "contract-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, uuid.NewString()+".pdf")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return "", fmt.Errorf("write temp pdf: %w", err)
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(path, conf); err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrUnreadablePDF, err)
	}

	pageCount, err := api.PageCountFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: page count: %v", entity.ErrUnreadablePDF, err)
	}

	pages, err := readPages(ctx, path)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(strings.Join(pages, PageSeparator))
	if text == "" {
		return "", entity.ErrNoTextExtracted
	}

	ctxzap.Debug(ctx, "pdf text extracted",
		zap.Int("page_count", pageCount),
		zap.Int("text_length", len(text)),
	)

	return text, nil
}

func readPages(ctx context.Context, path string) (pages []string, err error) {
	// The text reader panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("read pdf text: %v", r)
		}
	}()

	f, reader, err := ledongthuc.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	total := reader.NumPage()
	pages = make([]string, 0, total)
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("read page %d: %w", i, err)
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}

	return pages, nil
}
