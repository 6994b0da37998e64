package document

// ProcessingStatus is the coarse per-document status column. It is the
// fallback signal when no processing log entry exists for a document.
type ProcessingStatus string

const (
	ProcessingStatusPending    ProcessingStatus = "pending"
	ProcessingStatusProcessing ProcessingStatus = "processing"
	ProcessingStatusCompleted  ProcessingStatus = "completed"
	ProcessingStatusFailed     ProcessingStatus = "failed"
)

// IsValid checks if the ProcessingStatus is a valid value
func (s ProcessingStatus) IsValid() bool {
	switch s {
	case ProcessingStatusPending, ProcessingStatusProcessing, ProcessingStatusCompleted, ProcessingStatusFailed:
		return true
	}
	return false
}

// String returns the string representation of ProcessingStatus
func (s ProcessingStatus) String() string {
	return string(s)
}

// InferredPhase maps the coarse status to the pipeline phase reported
// when a document has no processing log entry of its own.
func (s ProcessingStatus) InferredPhase() ProcessingPhase {
	switch s {
	case ProcessingStatusPending:
		return PhaseUploading
	case ProcessingStatusProcessing:
		return PhaseParsing
	case ProcessingStatusCompleted:
		return PhaseCompleted
	case ProcessingStatusFailed:
		return PhaseFailed
	default:
		return PhaseUploading
	}
}

// ProcessingPhase is the fine-grained stage of the ingestion pipeline
type ProcessingPhase string

const (
	PhaseUploading ProcessingPhase = "uploading"
	PhaseParsing   ProcessingPhase = "parsing"
	PhaseChunking  ProcessingPhase = "chunking"
	PhaseEmbedding ProcessingPhase = "embedding"
	PhaseMetadata  ProcessingPhase = "metadata"
	PhaseCompleted ProcessingPhase = "completed"
	PhaseFailed    ProcessingPhase = "failed"
)

// IsValid checks if the ProcessingPhase is a valid value
func (p ProcessingPhase) IsValid() bool {
	switch p {
	case PhaseUploading, PhaseParsing, PhaseChunking, PhaseEmbedding,
		PhaseMetadata, PhaseCompleted, PhaseFailed:
		return true
	}
	return false
}

// String returns the string representation of ProcessingPhase
func (p ProcessingPhase) String() string {
	return string(p)
}

// IsTerminal returns true for phases that mean the pipeline is done
func (p ProcessingPhase) IsTerminal() bool {
	return p == PhaseCompleted || p == PhaseFailed
}
