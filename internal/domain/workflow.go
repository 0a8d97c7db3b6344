package domain

// Workflow names understood by the orchestrator.
const (
	WorkflowStartMyDay = "start_my_day"
	WorkflowEndMyDay   = "end_my_day"
)

// WorkflowReport records the outcome of a multi-step workflow. Attempted is
// the number of steps tried; Opened counts the ones that succeeded. A
// workflow completes even when individual steps fail, so Opened < Attempted
// is a partial success, not an error.
type WorkflowReport struct {
	Workflow  string `json:"workflow"`
	Attempted int    `json:"attempted"`
	Opened    int    `json:"opened"`
}

// CleanStats counts files moved per bucket by the downloads organizer.
type CleanStats struct {
	Images    int `json:"images"`
	Documents int `json:"documents"`
	Videos    int `json:"videos"`
	Archives  int `json:"archives"`
	Others    int `json:"others"`
}

// Total sums every bucket.
func (s CleanStats) Total() int {
	return s.Images + s.Documents + s.Videos + s.Archives + s.Others
}
