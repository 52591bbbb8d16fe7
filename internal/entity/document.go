package entity

// DocumentKind identifies which pipeline an upload is meant for.
type DocumentKind string

const (
	DocumentKindContract    DocumentKind = "contract"
	DocumentKindResignation DocumentKind = "resignation"
)

// Extension returns the only file extension accepted for the kind.
func (k DocumentKind) Extension() string {
	switch k {
	case DocumentKindContract:
		return ".pdf"
	case DocumentKindResignation:
		return ".eml"
	default:
		return ""
	}
}

// AnalysisRequest is a single uploaded document.
type AnalysisRequest struct {
	Kind     DocumentKind
	Filename string
	Content  []byte
}

// ExtractedEmail holds the email fields placed into the resignation prompt.
type ExtractedEmail struct {
	Sender     string
	Recipients string
	Subject    string
	// SentDate is the Date header as a local YYYY-MM-DD date, or empty.
	SentDate string
	Body     string
}

// ResultFormat is the rendering of an exported checklist.
type ResultFormat string

const (
	FormatMarkdown ResultFormat = "markdown"
	FormatDOCX     ResultFormat = "docx"
	FormatPDF      ResultFormat = "pdf"
)

func (f ResultFormat) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatDOCX, FormatPDF:
		return true
	default:
		return false
	}
}
