package pdf

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/futig/resignation-backend/internal/entity"
	"github.com/jung-kurt/gofpdf"
)

func buildPDF(t *testing.T, pages ...string) []byte {
	t.Helper()

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for _, text := range pages {
		doc.AddPage()
		doc.Cell(0, 10, text)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("build pdf: %v", err)
	}
	return buf.Bytes()
}

func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read temp dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected temp dir to be cleaned up, found %d entries", len(entries))
	}
}

func TestExtractKeepsPageOrder(t *testing.T) {
	tempDir := t.TempDir()
	e := NewExtractor(tempDir)

	text, err := e.Extract(context.Background(), buildPDF(t, "Notice period thirty days", "Return company laptop"))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	got := compact(text)
	first := strings.Index(got, "Noticeperiodthirtydays")
	second := strings.Index(got, "Returncompanylaptop")
	if first < 0 || second < 0 {
		t.Fatalf("expected both pages in text, got %q", text)
	}
	if first > second {
		t.Fatalf("expected page order to be preserved, got %q", text)
	}

	assertEmptyDir(t, tempDir)
}

func TestExtractRejectsNonPDF(t *testing.T) {
	tempDir := t.TempDir()
	e := NewExtractor(tempDir)

	_, err := e.Extract(context.Background(), []byte("definitely not a pdf"))
	if !errors.Is(err, entity.ErrUnreadablePDF) {
		t.Fatalf("expected ErrUnreadablePDF, got %v", err)
	}

	assertEmptyDir(t, tempDir)
}

func TestExtractRejectsEmptyContent(t *testing.T) {
	e := NewExtractor(t.TempDir())

	if _, err := e.Extract(context.Background(), nil); !errors.Is(err, entity.ErrEmptyFile) {
		t.Fatalf("expected ErrEmptyFile, got %v", err)
	}
}
