package formatter

import (
	"bytes"

	"github.com/futig/resignation-backend/internal/entity"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/measurement"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"
)

type DOCXFormatter struct{}

func NewDOCXFormatter() *DOCXFormatter {
	return &DOCXFormatter{}
}

func (mf *DOCXFormatter) Format(checklist entity.ContractChecklist) ([]byte, error) {
	doc := document.New()
	defer doc.Close()

	titlePar := doc.AddParagraph()
	titlePar.SetStyle("Heading1")
	titlePar.AddRun().AddText(baseTitle)

	for _, s := range buildSections(checklist) {
		heading := doc.AddParagraph()
		heading.SetStyle("Heading2")
		heading.AddRun().AddText(s.title)

		for _, l := range s.lines {
			par := doc.AddParagraph()
			text := l.text
			if l.depth > 0 {
				par.Properties().SetStartIndent(measurement.Distance(l.depth) * 0.25 * measurement.Inch)
				text = "• " + text
			}
			par.AddRun().AddText(text)
		}
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (mf *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (mf *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}
