package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/futig/resignation-backend/internal/entity"
	"go.uber.org/zap"
)

func TestMockResignationCountsDays(t *testing.T) {
	req := &entity.CompletionRequest{
		Messages: []entity.PromptMessage{
			{Role: entity.RoleSystem, Content: "Current date for reference: 2024-03-01"},
			{Role: entity.RoleUser, Content: "Please analyze the following resignation email:\n\nFrom: a\nTo: b\nSubject: c\nDate: 2024-01-01\n\nBody:\nI resign, my last working day is 2024-02-15."},
		},
		JSONMode: true,
	}

	out, err := NewMockConnector(zap.NewNop()).Complete(context.Background(), req)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	var analysis entity.ResignationAnalysis
	if err := json.Unmarshal([]byte(out), &analysis); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if analysis.NoticePeriodDays != 45 {
		t.Fatalf("expected 45 days, got %d", analysis.NoticePeriodDays)
	}
	if analysis.LastWorkingDay != "2024-02-15" {
		t.Fatalf("unexpected last working day %q", analysis.LastWorkingDay)
	}
	if !analysis.FormatCheck.IsValid {
		t.Fatalf("expected format check to pass")
	}
}

func TestMockContractChecklist(t *testing.T) {
	req := &entity.CompletionRequest{
		Messages: []entity.PromptMessage{{Role: entity.RoleUser, Content: "Contract text: anything"}},
	}

	out, err := NewMockConnector(zap.NewNop()).Complete(context.Background(), req)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	var checklist map[string]any
	if err := json.Unmarshal([]byte(out), &checklist); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := checklist[entity.ChecklistNoticePeriod]; !ok {
		t.Fatalf("expected notice_period in mock checklist: %v", checklist)
	}
}
