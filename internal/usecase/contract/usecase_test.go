package contract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/futig/resignation-backend/internal/entity"
	"go.uber.org/zap"
)

type fakeExtractor struct {
	text  string
	err   error
	calls int
}

func (f *fakeExtractor) Extract(ctx context.Context, content []byte) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeLLM struct {
	output   string
	err      error
	requests []*entity.CompletionRequest
}

func (f *fakeLLM) Complete(ctx context.Context, req *entity.CompletionRequest) (string, error) {
	f.requests = append(f.requests, req)
	return f.output, f.err
}

func TestMergeChecklist(t *testing.T) {
	defaults := DefaultChecklist()
	parsed := entity.ContractChecklist{
		entity.ChecklistNoticePeriod: "60 days",
		entity.ChecklistResignationLetter: map[string]any{
			"required": false,
		},
		"severance": "one month",
	}

	merged := MergeChecklist(defaults, parsed)

	if merged[entity.ChecklistNoticePeriod] != "60 days" {
		t.Fatalf("expected parsed notice period to win, got %v", merged[entity.ChecklistNoticePeriod])
	}
	letter := merged[entity.ChecklistResignationLetter].(map[string]any)
	if len(letter) != 1 || letter["required"] != false {
		t.Fatalf("expected nested value to be replaced wholesale, got %v", letter)
	}
	if merged["severance"] != "one month" {
		t.Fatalf("expected extra key to be preserved")
	}
	for _, key := range entity.ChecklistKeys {
		if _, ok := merged[key]; !ok {
			t.Fatalf("expected default key %q to be present", key)
		}
	}
	if !reflect.DeepEqual(merged[entity.ChecklistComplianceConsequences], defaults[entity.ChecklistComplianceConsequences]) {
		t.Fatalf("expected absent key to fall back to default")
	}
}

func TestMergeChecklistDoesNotMutateInputs(t *testing.T) {
	defaults := DefaultChecklist()
	parsed := entity.ContractChecklist{entity.ChecklistNoticePeriod: "60 days"}

	MergeChecklist(defaults, parsed)

	if defaults[entity.ChecklistNoticePeriod] != "Not specified in contract" {
		t.Fatalf("defaults were modified")
	}
	if len(parsed) != 1 {
		t.Fatalf("parsed was modified")
	}
}

func TestMergeChecklistEmptyParsedEqualsDefaults(t *testing.T) {
	merged := MergeChecklist(DefaultChecklist(), entity.ContractChecklist{})

	if !reflect.DeepEqual(merged, DefaultChecklist()) {
		t.Fatalf("expected defaults, got %v", merged)
	}
}

func TestDefaultChecklistIsFresh(t *testing.T) {
	first := DefaultChecklist()
	first[entity.ChecklistNoticePeriod] = "changed"
	first[entity.ChecklistResignationLetter].(map[string]any)["format"] = "changed"

	second := DefaultChecklist()
	if second[entity.ChecklistNoticePeriod] != "Not specified in contract" {
		t.Fatalf("top-level default leaked between calls")
	}
	if second[entity.ChecklistResignationLetter].(map[string]any)["format"] != "Written formal letter" {
		t.Fatalf("nested default leaked between calls")
	}
}

func TestDefaultChecklistValues(t *testing.T) {
	want := entity.ContractChecklist{
		entity.ChecklistNoticePeriod: "Not specified in contract",
		entity.ChecklistResignationLetter: map[string]any{
			"required":          true,
			"format":            "Written formal letter",
			"submission_method": "Not specified in contract",
			"recipient":         "Immediate supervisor or HR department",
		},
		entity.ChecklistSpecialRequirements:        []any{},
		entity.ChecklistPostResignationObligations: []any{},
		entity.ChecklistComplianceConsequences:     []any{},
	}

	if got := DefaultChecklist(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected default checklist:\n got %#v\nwant %#v", got, want)
	}

	// List-valued keys serialize as arrays.
	raw, err := json.Marshal(DefaultChecklist())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{
		entity.ChecklistSpecialRequirements,
		entity.ChecklistPostResignationObligations,
		entity.ChecklistComplianceConsequences,
	} {
		if !strings.Contains(string(raw), fmt.Sprintf("%q:[]", key)) {
			t.Errorf("expected %s to serialize as an empty array in %s", key, raw)
		}
	}
}

func TestParseChecklistRejectsNonObjects(t *testing.T) {
	cases := []string{
		``,
		`[]`,
		`"text"`,
		`null`,
		"```json\n{}\n```",
		`{"a":1} {"b":2}`,
		`{"a":`,
	}

	for _, raw := range cases {
		if _, err := ParseChecklist(raw); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}

func TestAnalyze(t *testing.T) {
	extractor := &fakeExtractor{text: "Employee shall give 60 days notice."}
	model := &fakeLLM{output: ` {"notice_period": "60 days", "extra": [1, 2]} `}
	uc := NewUsecase(extractor, model, "English", zap.NewNop())

	result, err := uc.Analyze(context.Background(), []byte("%PDF"))
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if result.Status != "success" {
		t.Fatalf("unexpected status %q", result.Status)
	}
	if result.ResignationChecklist[entity.ChecklistNoticePeriod] != "60 days" {
		t.Fatalf("unexpected checklist %v", result.ResignationChecklist)
	}
	if _, ok := result.ResignationChecklist["extra"]; !ok {
		t.Fatalf("expected extra key to be kept")
	}
	if len(result.ResignationChecklist) != len(entity.ChecklistKeys)+1 {
		t.Fatalf("expected defaults plus extra key, got %d keys", len(result.ResignationChecklist))
	}

	req := model.requests[0]
	if req.JSONMode {
		t.Fatalf("contract analysis should not request JSON mode")
	}
	if !strings.Contains(req.UserPrompt(), "Employee shall give 60 days notice.") {
		t.Fatalf("expected contract text in user prompt")
	}
	if !strings.Contains(req.SystemPrompt(), "English") {
		t.Fatalf("expected output language in system prompt")
	}
}

func TestAnalyzeErrorKinds(t *testing.T) {
	cases := []struct {
		name      string
		extractor *fakeExtractor
		model     *fakeLLM
		want      entity.ErrorKind
	}{
		{
			name:      "not a pdf",
			extractor: &fakeExtractor{err: fmt.Errorf("%w: header", entity.ErrUnreadablePDF)},
			model:     &fakeLLM{},
			want:      entity.KindInvalidInput,
		},
		{
			name:      "no text",
			extractor: &fakeExtractor{err: entity.ErrNoTextExtracted},
			model:     &fakeLLM{},
			want:      entity.KindExtraction,
		},
		{
			name:      "model down",
			extractor: &fakeExtractor{text: "text"},
			model:     &fakeLLM{err: errors.New("HTTP 503")},
			want:      entity.KindInvocation,
		},
		{
			name:      "prose answer",
			extractor: &fakeExtractor{text: "text"},
			model:     &fakeLLM{output: "Here is your checklist: ..."},
			want:      entity.KindParse,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewUsecase(tc.extractor, tc.model, "English", zap.NewNop())

			_, err := uc.Analyze(context.Background(), []byte("data"))
			if got := entity.KindOf(err); got != tc.want {
				t.Fatalf("expected kind %q, got %q (%v)", tc.want, got, err)
			}
			if tc.want == entity.KindInvalidInput || tc.want == entity.KindExtraction {
				if len(tc.model.requests) != 0 {
					t.Fatalf("model must not be called when extraction fails")
				}
			}
		})
	}
}
