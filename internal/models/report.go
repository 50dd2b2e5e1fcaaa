package models

// IssueType separates blocking problems from advisory ones.
type IssueType string

const (
	IssueError   IssueType = "error"
	IssueWarning IssueType = "warning"
)

// ValidationIssue is one concrete problem found in a build. Issues are plain
// data: the engine reports incompatibilities, it never fails on them.
type ValidationIssue struct {
	Type               IssueType `json:"type"`
	Code               string    `json:"code"`
	Message            string    `json:"message"`
	AffectedComponents []string  `json:"affected_components"`
	Suggestion         string    `json:"suggestion,omitempty"`
}

// Issue codes reported by ValidateBuild.
const (
	CodeSocketMismatch       = "SOCKET_MISMATCH"
	CodeMemoryTypeMismatch   = "MEMORY_TYPE_MISMATCH"
	CodeGPUTooLong           = "GPU_TOO_LONG"
	CodeCoolerTooTall        = "COOLER_TOO_TALL"
	CodeCoolerSocketMismatch = "COOLER_SOCKET_MISMATCH"
	CodeFormFactorMismatch   = "FORM_FACTOR_MISMATCH"
	CodePSUInsufficient      = "PSU_INSUFFICIENT"
)

// PowerAnalysis is the derived power budget for a build snapshot. It is
// recomputed on every call and never stored.
type PowerAnalysis struct {
	TotalTDP         int    `json:"total_tdp"`
	RecommendedPSU   int    `json:"recommended_psu"`
	RecommendedTier  string `json:"recommended_tier"`
	CurrentPSU       *int   `json:"current_psu"`
	Headroom         *int   `json:"headroom"`
	EfficiencyAtLoad string `json:"efficiency_at_load"`
}

// ValidationResult is the aggregate report for one build snapshot.
// Completeness and validity are independent: missing slots are informational
// and never produce issues on their own.
type ValidationResult struct {
	Valid             bool              `json:"valid"`
	Complete          bool              `json:"complete"`
	Issues            []ValidationIssue `json:"issues"`
	PowerAnalysis     PowerAnalysis     `json:"power_analysis"`
	MissingComponents []string          `json:"missing_components"`
}

// CompatStatus classifies a single candidate against the current build.
type CompatStatus string

const (
	StatusCompatible   CompatStatus = "compatible"
	StatusWarning      CompatStatus = "warning"
	StatusIncompatible CompatStatus = "incompatible"
	StatusUnknown      CompatStatus = "unknown"
)

// CheckResult is the verdict for one candidate component. Message is empty
// for a clean pass.
type CheckResult struct {
	Status  CompatStatus `json:"status"`
	Message string       `json:"message,omitempty"`
}

// ActiveFilters are the query-narrowing constraints derived from the current
// selection and handed to the search layer. Empty string means no constraint.
type ActiveFilters struct {
	Socket     string `json:"socket,omitempty"`
	MemoryType string `json:"memory_type,omitempty"`
	FormFactor string `json:"form_factor,omitempty"`
}
