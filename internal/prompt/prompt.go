// Package prompt renders the fixed two-message prompts sent to the LLM.
package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/futig/resignation-backend/internal/entity"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Template is a parsed system + user message pair. It is safe for
// concurrent use.
type Template struct {
	system *template.Template
	user   *template.Template
}

func mustLoad(name string) *template.Template {
	file := name + ".tmpl"
	return template.Must(template.New(file).Option("missingkey=error").ParseFS(templateFS, "templates/"+file))
}

var (
	contractTemplate = &Template{
		system: mustLoad("contract_system"),
		user:   mustLoad("contract_user"),
	}
	resignationTemplate = &Template{
		system: mustLoad("resignation_system"),
		user:   mustLoad("resignation_user"),
	}
)

// Contract returns the contract checklist template.
func Contract() *Template { return contractTemplate }

// Resignation returns the resignation email template.
func Resignation() *Template { return resignationTemplate }

// Render executes both messages against data.
func (t *Template) Render(data any) ([]entity.PromptMessage, error) {
	system, err := execute(t.system, data)
	if err != nil {
		return nil, fmt.Errorf("render system message: %w", err)
	}
	user, err := execute(t.user, data)
	if err != nil {
		return nil, fmt.Errorf("render user message: %w", err)
	}

	return []entity.PromptMessage{
		{Role: entity.RoleSystem, Content: system},
		{Role: entity.RoleUser, Content: user},
	}, nil
}

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

// ContractData fills the contract template.
type ContractData struct {
	Language     string
	ContractText string
}

// ResignationData fills the resignation template.
type ResignationData struct {
	CurrentDate string
	Sender      string
	Recipients  string
	Subject     string
	SentDate    string
	Body        string
}

// NewResignationData copies the email fields into template data.
func NewResignationData(email *entity.ExtractedEmail, currentDate string) ResignationData {
	return ResignationData{
		CurrentDate: currentDate,
		Sender:      email.Sender,
		Recipients:  email.Recipients,
		Subject:     email.Subject,
		SentDate:    email.SentDate,
		Body:        email.Body,
	}
}
