package entity

// RequiredNoticeDays is the minimum notice period accepted by the validator.
const RequiredNoticeDays = 30

// FormatCheck is the model's judgement on the email's form.
type FormatCheck struct {
	IsValid bool   `json:"is_valid"`
	Details string `json:"details"`
}

// ResignationAnalysis is the model output for a resignation email.
type ResignationAnalysis struct {
	LastWorkingDay   string      `json:"last_working_day"`
	NoticePeriodDays int         `json:"notice_period_days"`
	FormatCheck      FormatCheck `json:"format_check"`
	SpecialNotes     []string    `json:"special_notes"`
}

type NoticePeriodCheck struct {
	Passed       bool   `json:"passed"`
	Details      string `json:"details"`
	RequiredDays int    `json:"required_days"`
}

type ValidationChecks struct {
	NoticePeriod NoticePeriodCheck `json:"notice_period"`
	Format       FormatCheck       `json:"format"`
	SpecialNotes []string          `json:"special_notes"`
}

// ValidationResult is the deterministic verdict computed from an analysis.
type ValidationResult struct {
	IsValid bool             `json:"is_valid"`
	Checks  ValidationChecks `json:"checks"`
	// AgentNotified is nil when no notification was attempted.
	AgentNotified *bool `json:"agent_notified,omitempty"`
}

const (
	ResignationStatusApproved = "approved"
	ResignationStatusRejected = "rejected"
)

// ResignationResponse is the response of the resignation endpoint.
type ResignationResponse struct {
	Status        string           `json:"status"`
	Message       string           `json:"message"`
	Details       ValidationChecks `json:"details"`
	SafeAddress   string           `json:"safe_address,omitempty"`
	AgentNotified *bool            `json:"agent_notified,omitempty"`
}

const (
	approvedMessage = "Resignation request approved"
	rejectedMessage = "Resignation request rejected"
)

// Response builds the endpoint payload. agent_notified is reported only for
// approved requests where a notification was attempted.
func (r *ValidationResult) Response(safeAddress string) *ResignationResponse {
	if !r.IsValid {
		return &ResignationResponse{
			Status:      ResignationStatusRejected,
			Message:     rejectedMessage,
			Details:     r.Checks,
			SafeAddress: safeAddress,
		}
	}

	return &ResignationResponse{
		Status:        ResignationStatusApproved,
		Message:       approvedMessage,
		Details:       r.Checks,
		SafeAddress:   safeAddress,
		AgentNotified: r.AgentNotified,
	}
}
