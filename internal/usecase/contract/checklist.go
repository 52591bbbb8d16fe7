package contract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/futig/resignation-backend/internal/entity"
)

const notSpecified = "Not specified in contract"

// DefaultChecklist returns a fresh checklist skeleton. Callers may mutate
// the result.
func DefaultChecklist() entity.ContractChecklist {
	return entity.ContractChecklist{
		entity.ChecklistNoticePeriod: notSpecified,
		entity.ChecklistResignationLetter: map[string]any{
			"required":          true,
			"format":            "Written formal letter",
			"submission_method": notSpecified,
			"recipient":         "Immediate supervisor or HR department",
		},
		entity.ChecklistSpecialRequirements:        []any{},
		entity.ChecklistPostResignationObligations: []any{},
		entity.ChecklistComplianceConsequences:     []any{},
	}
}

// MergeChecklist overlays parsed on defaults. Top-level keys from parsed
// replace the default value wholesale; neither argument is modified.
func MergeChecklist(defaults, parsed entity.ContractChecklist) entity.ContractChecklist {
	merged := make(entity.ContractChecklist, len(defaults)+len(parsed))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range parsed {
		merged[k] = v
	}
	return merged
}

// ParseChecklist decodes raw model output as a single JSON object.
func ParseChecklist(raw string) (entity.ContractChecklist, error) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return nil, fmt.Errorf("%w: expected a JSON object", entity.ErrSchemaMismatch)
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(trimmed)))
	var checklist entity.ContractChecklist
	if err := dec.Decode(&checklist); err != nil {
		return nil, fmt.Errorf("decode checklist: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after JSON object", entity.ErrSchemaMismatch)
	}
	if checklist == nil {
		return nil, fmt.Errorf("%w: null checklist", entity.ErrSchemaMismatch)
	}

	return checklist, nil
}
