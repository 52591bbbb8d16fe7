package entity

// Checklist keys produced by the contract analyzer.
const (
	ChecklistNoticePeriod               = "notice_period"
	ChecklistResignationLetter          = "resignation_letter"
	ChecklistSpecialRequirements        = "special_requirements"
	ChecklistPostResignationObligations = "post_resignation_obligations"
	ChecklistComplianceConsequences     = "compliance_consequences"
)

// ChecklistKeys lists the known checklist keys in presentation order.
var ChecklistKeys = []string{
	ChecklistNoticePeriod,
	ChecklistResignationLetter,
	ChecklistSpecialRequirements,
	ChecklistPostResignationObligations,
	ChecklistComplianceConsequences,
}

// ContractChecklist is the model's checklist merged over the defaults.
// Values keep whatever JSON shape the model produced.
type ContractChecklist map[string]any

// ContractAnalysis is the response of the contract endpoint.
type ContractAnalysis struct {
	Status               string            `json:"status"`
	ResignationChecklist ContractChecklist `json:"resignation_checklist"`
}
