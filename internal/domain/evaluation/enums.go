package evaluation

// RunStatus represents the lifecycle status of a QA test run
type RunStatus string

const (
	RunStatusGenerating RunStatus = "generating" // question generation in progress
	RunStatusRunning    RunStatus = "running"    // questions being executed against the product
	RunStatusEvaluating RunStatus = "evaluating" // answers being scored
	RunStatusCompleted  RunStatus = "completed"
	RunStatusFailed     RunStatus = "failed"
)

// IsValid checks if the RunStatus is a valid value
func (s RunStatus) IsValid() bool {
	switch s {
	case RunStatusGenerating, RunStatusRunning, RunStatusEvaluating, RunStatusCompleted, RunStatusFailed:
		return true
	}
	return false
}

// String returns the string representation of RunStatus
func (s RunStatus) String() string {
	return string(s)
}

// IsTerminal returns true if this is a terminal status (no further transitions)
func (s RunStatus) IsTerminal() bool {
	return s == RunStatusCompleted || s == RunStatusFailed
}

// CanTransitionTo checks if the status can transition to the target status.
// The success path is linear; any non-terminal status may fail.
func (s RunStatus) CanTransitionTo(target RunStatus) bool {
	switch s {
	case RunStatusGenerating:
		return target == RunStatusRunning || target == RunStatusFailed
	case RunStatusRunning:
		return target == RunStatusEvaluating || target == RunStatusFailed
	case RunStatusEvaluating:
		return target == RunStatusCompleted || target == RunStatusFailed
	case RunStatusCompleted, RunStatusFailed:
		return false
	}
	return false
}

// PhaseLabel returns the human-readable label shown in progress responses
func (s RunStatus) PhaseLabel() string {
	switch s {
	case RunStatusGenerating:
		return "Generating test questions"
	case RunStatusRunning:
		return "Running tests"
	case RunStatusEvaluating:
		return "Evaluating answers"
	case RunStatusCompleted:
		return "Completed"
	case RunStatusFailed:
		return "Failed"
	default:
		return string(s)
	}
}

// AllRunStatuses returns all valid RunStatus values
func AllRunStatuses() []RunStatus {
	return []RunStatus{
		RunStatusGenerating, RunStatusRunning, RunStatusEvaluating,
		RunStatusCompleted, RunStatusFailed,
	}
}

// ReportFormat represents the export format of a test-run report
type ReportFormat string

const (
	ReportFormatPDF ReportFormat = "pdf"
	ReportFormatCSV ReportFormat = "csv"
)

// IsValid checks if the ReportFormat is a valid value
func (f ReportFormat) IsValid() bool {
	return f == ReportFormatPDF || f == ReportFormatCSV
}

// String returns the string representation of ReportFormat
func (f ReportFormat) String() string {
	return string(f)
}

// Extension returns the file extension for the format
func (f ReportFormat) Extension() string {
	return string(f)
}
