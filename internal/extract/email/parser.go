// Package email extracts the fields of a resignation email from raw .eml
// bytes.
package email

import (
	"bytes"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/futig/resignation-backend/internal/entity"
	"github.com/jhillyerd/enmime"
)

const dateLayout = "2006-01-02"

type Parser struct {
	location *time.Location
}

// NewParser returns a parser that reports sent dates in loc. A nil loc means
// the process local zone.
func NewParser(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.Local
	}
	return &Parser{location: loc}
}

// Parse reads sender, recipients, subject, sent date and the plain text body.
// Multipart messages use their first text/plain part.
func (p *Parser) Parse(content []byte) (*entity.ExtractedEmail, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, entity.ErrEmptyFile
	}

	env, err := enmime.ReadEnvelope(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidEmail, err)
	}
	if env.Root == nil || len(env.Root.Header) == 0 {
		return nil, fmt.Errorf("%w: no headers found", entity.ErrInvalidEmail)
	}

	sentDate, err := p.normalizeDate(env.GetHeader("Date"))
	if err != nil {
		return nil, err
	}

	return &entity.ExtractedEmail{
		Sender:     env.GetHeader("From"),
		Recipients: env.GetHeader("To"),
		Subject:    env.GetHeader("Subject"),
		SentDate:   sentDate,
		Body:       strings.TrimSpace(string(plainBody(env.Root))),
	}, nil
}

// plainBody returns the decoded payload of a single-part message, or of the
// first inline text/plain part in depth-first order for a multipart one.
// A multipart message without such a part has an empty body.
func plainBody(root *enmime.Part) []byte {
	if root.FirstChild == nil {
		return root.Content
	}

	var walk func(p *enmime.Part) []byte
	walk = func(p *enmime.Part) []byte {
		for ; p != nil; p = p.NextSibling {
			if p.ContentType == "text/plain" && p.Disposition != "attachment" {
				return p.Content
			}
			if body := walk(p.FirstChild); body != nil {
				return body
			}
		}
		return nil
	}
	return walk(root.FirstChild)
}

func (p *Parser) normalizeDate(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", nil
	}

	sent, err := mail.ParseDate(header)
	if err != nil {
		return "", fmt.Errorf("%w: date header %q: %v", entity.ErrInvalidEmail, header, err)
	}

	return sent.In(p.location).Format(dateLayout), nil
}
