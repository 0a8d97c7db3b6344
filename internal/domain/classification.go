package domain

// Intent is the closed set of things the assistant knows how to do.
type Intent string

const (
	IntentOpenApp       Intent = "open_app"
	IntentOpenWebsite   Intent = "open_website"
	IntentSystemInfo    Intent = "system_info"
	IntentFileOperation Intent = "file_operation"
	IntentWorkflow      Intent = "workflow"
	IntentUnknown       Intent = "unknown"
)

// Valid reports whether the intent is one of the known values.
func (i Intent) Valid() bool {
	switch i {
	case IntentOpenApp, IntentOpenWebsite, IntentSystemInfo,
		IntentFileOperation, IntentWorkflow, IntentUnknown:
		return true
	}
	return false
}

// Classification is what the classifier decided about a spoken command.
type Classification struct {
	Intent     Intent         `json:"intent"`
	Action     string         `json:"action"`
	Confidence float64        `json:"confidence"`
	Parameters map[string]any `json:"parameters"`
}

// UnknownClassification is the sentinel for "could not classify".
func UnknownClassification() Classification {
	return Classification{
		Intent:     IntentUnknown,
		Action:     "",
		Confidence: 0.0,
		Parameters: map[string]any{},
	}
}

// WellFormed reports whether the classification obeys the structural rules:
// a valid intent, confidence in [0, 1], and an unknown intent only as the
// zero-confidence empty-action sentinel.
func (c Classification) WellFormed() bool {
	if !c.Intent.Valid() {
		return false
	}
	if c.Confidence < 0 || c.Confidence > 1 {
		return false
	}
	if c.Intent == IntentUnknown {
		return c.Action == "" && c.Confidence == 0
	}
	return c.Action != ""
}
