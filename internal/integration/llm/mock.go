package llm

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/futig/resignation-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const mockDateLayout = "2006-01-02"

var (
	mockSentDateRE = regexp.MustCompile(`(?m)^Date: (\d{4}-\d{2}-\d{2})\s*$`)
	mockDateRE     = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
)

// MockConnector answers prompts without calling a model. Contract prompts get
// a fixed checklist; resignation prompts get the day count between the sent
// date and the last date mentioned in the body.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Complete(ctx context.Context, req *entity.CompletionRequest) (string, error) {
	user := req.UserPrompt()

	var out any
	if strings.Contains(user, "Contract text:") {
		ctxzap.Info(ctx, "[MOCK] analyzing contract")
		out = mockChecklist()
	} else {
		ctxzap.Info(ctx, "[MOCK] analyzing resignation email")
		out = mockResignation(user)
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return "", err
	}

	ctxzap.Info(ctx, "[MOCK] completion generated", zap.Int("result_length", len(raw)))
	return string(raw), nil
}

func mockChecklist() map[string]any {
	return map[string]any{
		entity.ChecklistNoticePeriod: "30 days written notice (MOCK)",
		entity.ChecklistResignationLetter: map[string]any{
			"required":          true,
			"format":            "Signed formal letter (MOCK)",
			"submission_method": "email",
			"recipient":         "HR department",
		},
		entity.ChecklistSpecialRequirements: []string{"Hand over ongoing work (MOCK)"},
	}
}

func mockResignation(prompt string) *entity.ResignationAnalysis {
	analysis := &entity.ResignationAnalysis{
		FormatCheck: entity.FormatCheck{
			IsValid: false,
			Details: "No resignation statement found (MOCK)",
		},
		SpecialNotes: []string{},
	}

	body := prompt
	if idx := strings.Index(prompt, "Body:"); idx >= 0 {
		body = prompt[idx:]
	}
	if strings.Contains(strings.ToLower(body), "resign") {
		analysis.FormatCheck = entity.FormatCheck{IsValid: true, Details: "Contains a resignation statement (MOCK)"}
	}

	match := mockSentDateRE.FindStringSubmatch(prompt)
	if match == nil {
		return analysis
	}
	sent, err := time.Parse(mockDateLayout, match[1])
	if err != nil {
		return analysis
	}

	dates := mockDateRE.FindAllString(body, -1)
	if len(dates) == 0 {
		return analysis
	}
	last, err := time.Parse(mockDateLayout, dates[len(dates)-1])
	if err != nil {
		return analysis
	}

	analysis.LastWorkingDay = last.Format(mockDateLayout)
	analysis.NoticePeriodDays = int(last.Sub(sent).Hours() / 24)
	return analysis
}
