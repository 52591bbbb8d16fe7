package resignation

import (
	"fmt"

	"github.com/futig/resignation-backend/internal/entity"
)

// Decide applies the notice period and format rules to an analysis. The
// result never carries a notification outcome.
func Decide(analysis *entity.ResignationAnalysis) *entity.ValidationResult {
	passed := analysis.NoticePeriodDays >= entity.RequiredNoticeDays

	notes := analysis.SpecialNotes
	if notes == nil {
		notes = []string{}
	}

	return &entity.ValidationResult{
		IsValid: passed && analysis.FormatCheck.IsValid,
		Checks: entity.ValidationChecks{
			NoticePeriod: entity.NoticePeriodCheck{
				Passed:       passed,
				Details:      fmt.Sprintf("Given %d days notice", analysis.NoticePeriodDays),
				RequiredDays: entity.RequiredNoticeDays,
			},
			Format:       analysis.FormatCheck,
			SpecialNotes: notes,
		},
	}
}
