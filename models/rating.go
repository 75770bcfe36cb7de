package models

// RatingRequest is the pair of free-text fields submitted by the form
type RatingRequest struct {
	Advice        string `json:"advice" form:"advice"`
	Circumstances string `json:"circumstances" form:"circumstances"`
}

// Severity values mirror the four alert styles used by the page.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
	SeveritySuccess = "success"
)

// Badge is the colored verdict shown under a rating
type Badge struct {
	Severity string `json:"severity"`
	Icon     string `json:"icon"`
	Label    string `json:"label"`
	Message  string `json:"message"`
}

// RatingView is what the presentation layer renders for a successful completion.
// Score and Badge are nil when no rating could be extracted from RawText.
type RatingView struct {
	RawText string `json:"rawText"`
	Score   *int   `json:"score,omitempty"`
	Badge   *Badge `json:"badge,omitempty"`
}

// RatingOutcome wraps a view or the error path shown to the user
type RatingOutcome struct {
	Result          *RatingView `json:"result,omitempty"`
	Error           string      `json:"error,omitempty"`
	Field           string      `json:"field,omitempty"`
	Throttled       bool        `json:"throttled,omitempty"`
	AvailableModels []string    `json:"availableModels,omitempty"`
	ModelsError     string      `json:"modelsError,omitempty"`
}

// CredentialRequest carries the caller-supplied API key
type CredentialRequest struct {
	Credential string `json:"credential" form:"credential"`
}
