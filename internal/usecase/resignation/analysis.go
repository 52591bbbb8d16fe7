package resignation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/futig/resignation-backend/internal/entity"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const analysisSchemaURL = "analysis.json"

//go:embed schema/analysis.json
var analysisSchemaJSON []byte

var analysisSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(analysisSchemaURL, bytes.NewReader(analysisSchemaJSON)); err != nil {
		panic(fmt.Sprintf("add analysis schema: %v", err))
	}
	return compiler.MustCompile(analysisSchemaURL)
}

// ParseAnalysis validates raw model output against the analysis schema and
// decodes it. notice_period_days may arrive as 45, 45.0 or "45".
func ParseAnalysis(raw string) (*entity.ResignationAnalysis, error) {
	dec := json.NewDecoder(strings.NewReader(strings.TrimSpace(raw)))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after JSON object", entity.ErrSchemaMismatch)
	}

	if err := analysisSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrSchemaMismatch, err)
	}

	obj := doc.(map[string]any)
	days, err := noticeDays(obj["notice_period_days"])
	if err != nil {
		return nil, err
	}

	format := obj["format_check"].(map[string]any)
	rawNotes := obj["special_notes"].([]any)
	notes := make([]string, 0, len(rawNotes))
	for _, n := range rawNotes {
		notes = append(notes, n.(string))
	}

	return &entity.ResignationAnalysis{
		LastWorkingDay:   obj["last_working_day"].(string),
		NoticePeriodDays: days,
		FormatCheck: entity.FormatCheck{
			IsValid: format["is_valid"].(bool),
			Details: format["details"].(string),
		},
		SpecialNotes: notes,
	}, nil
}

func noticeDays(v any) (int, error) {
	switch n := v.(type) {
	case json.Number:
		r, ok := new(big.Rat).SetString(n.String())
		if !ok || !r.IsInt() || !r.Num().IsInt64() {
			return 0, fmt.Errorf("%w: notice_period_days %s is not an integer", entity.ErrSchemaMismatch, n)
		}
		return int(r.Num().Int64()), nil
	case string:
		days, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("%w: notice_period_days %q: %v", entity.ErrSchemaMismatch, n, err)
		}
		return days, nil
	default:
		return 0, fmt.Errorf("%w: notice_period_days has type %T", entity.ErrSchemaMismatch, v)
	}
}
