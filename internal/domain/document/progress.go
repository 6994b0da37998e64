package document

import (
	"time"

	"github.com/google/uuid"
)

// ProcessingEntry is one in-flight document in the merged progress view
type ProcessingEntry struct {
	DocumentID    uuid.UUID       `json:"document_id"`
	Filename      string          `json:"filename"`
	Phase         ProcessingPhase `json:"phase"`
	ChunksCreated int             `json:"chunks_created,omitempty"`
	TotalPages    int             `json:"total_pages,omitempty"`
	ErrorMessage  string          `json:"error_message,omitempty"`
	StartedAt     *time.Time      `json:"started_at,omitempty"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
}

// ProcessingOverview is the polling response for document ingestion
type ProcessingOverview struct {
	Documents     []ProcessingEntry `json:"documents"`
	HasProcessing bool              `json:"has_processing"`
}

// MergeProcessingStatus merges the two ingestion signals into a single
// view. It is a pure projection over two already-fetched snapshots: the
// caller decides how fresh they are, the merge itself performs no I/O.
//
// Log entries are the higher-fidelity source and populate the result
// first; documents still marked pending/processing that have no log entry
// get a fallback entry with the phase inferred from their coarse status.
// Only documents whose phase is non-terminal are reported.
func MergeProcessingStatus(logs []ProcessingLog, docs []Document) ProcessingOverview {
	entries := make(map[uuid.UUID]ProcessingEntry, len(logs))
	order := make([]uuid.UUID, 0, len(logs)+len(docs))

	for _, l := range logs {
		if l.DocumentID == uuid.Nil {
			continue
		}
		if _, ok := entries[l.DocumentID]; !ok {
			order = append(order, l.DocumentID)
		}
		entries[l.DocumentID] = ProcessingEntry{
			DocumentID:    l.DocumentID,
			Filename:      l.Filename,
			Phase:         l.Phase,
			ChunksCreated: l.ChunksCreated,
			TotalPages:    l.TotalPages,
			ErrorMessage:  l.ErrorMessage,
			StartedAt:     l.StartedAt,
			CompletedAt:   l.CompletedAt,
		}
	}

	for _, d := range docs {
		if !d.InFlight() {
			continue
		}
		if _, ok := entries[d.ID]; ok {
			// A log entry already covers this document.
			continue
		}
		order = append(order, d.ID)
		entries[d.ID] = ProcessingEntry{
			DocumentID: d.ID,
			Filename:   d.Filename,
			Phase:      d.Status.InferredPhase(),
		}
	}

	inFlight := make([]ProcessingEntry, 0, len(order))
	for _, id := range order {
		if e := entries[id]; !e.Phase.IsTerminal() {
			inFlight = append(inFlight, e)
		}
	}

	return ProcessingOverview{
		Documents:     inFlight,
		HasProcessing: len(inFlight) > 0,
	}
}
