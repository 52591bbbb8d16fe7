package formatter

import (
	"bytes"
	"os"

	"github.com/futig/resignation-backend/internal/entity"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfContentType   = "application/pdf"
	pdfFileExtension = ".pdf"

	pdfFontName = "NotoSansCJK"

	// Checked relative to the working directory: container layout first,
	// then the repository root.
	pdfFontRuntimePath = "ttf/NotoSansTC-Regular.ttf"
	pdfFontSourcePath  = "internal/pkg/formatter/ttf/NotoSansTC-Regular.ttf"
)

type PDFFormatter struct{}

func NewPDFFormatter() *PDFFormatter {
	return &PDFFormatter{}
}

func resolveFontPath() string {
	for _, path := range []string{pdfFontRuntimePath, pdfFontSourcePath} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func (mf *PDFFormatter) Format(checklist entity.ContractChecklist) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Core fonts cannot render non-Latin text, prefer the bundled TTF.
	fontName := "Arial"
	if fontPath := resolveFontPath(); fontPath != "" {
		pdf.AddUTF8Font(pdfFontName, "", fontPath)
		pdf.AddUTF8Font(pdfFontName, "B", fontPath)
		fontName = pdfFontName
	}

	pdf.SetFont(fontName, "B", 20)
	pdf.Cell(0, 10, baseTitle)
	pdf.Ln(14)

	for _, s := range buildSections(checklist) {
		pdf.SetFont(fontName, "B", 14)
		pdf.Cell(0, 8, s.title)
		pdf.Ln(10)

		pdf.SetFont(fontName, "", 11)
		_, lineHeight := pdf.GetFontSize()
		for _, l := range s.lines {
			text := l.text
			if l.depth > 0 {
				text = "- " + text
			}
			pdf.SetX(pdf.GetX() + float64(l.depth)*6)
			pdf.MultiCell(0, lineHeight*1.5, text, "", "", false)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (mf *PDFFormatter) ContentType() string {
	return pdfContentType
}

func (mf *PDFFormatter) FileExtension() string {
	return pdfFileExtension
}
