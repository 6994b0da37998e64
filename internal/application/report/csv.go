package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/docuchat/backend/internal/domain/evaluation"
)

// renderCSV writes one row per question plus a leading summary block.
// Unevaluated questions carry an empty passed column.
func renderCSV(run *evaluation.TestRun, questions []evaluation.TestQuestion) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	summary := [][]string{
		{"run_id", run.ID.String()},
		{"status", run.Status.String()},
	}
	if run.Metrics != nil {
		summary = append(summary,
			[]string{"overall_score", strconv.FormatFloat(run.Metrics.OverallScore, 'f', 4, 64)},
			[]string{"total_cost", strconv.FormatFloat(run.Metrics.TotalCost, 'f', 4, 64)},
			[]string{"duration_seconds", strconv.Itoa(run.Metrics.DurationSeconds)},
		)
		for _, category := range sortedCategories(run.Metrics.ScoresByCategory) {
			summary = append(summary, []string{
				"score:" + category,
				strconv.FormatFloat(run.Metrics.ScoresByCategory[category], 'f', 4, 64),
			})
		}
	}
	summary = append(summary, []string{})

	for _, row := range summary {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv: %w", err)
		}
	}

	header := []string{"category", "question", "expected_answer", "actual_answer", "passed"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}

	for i := range questions {
		q := &questions[i]
		passed := ""
		if q.Passed != nil {
			passed = strconv.FormatBool(*q.Passed)
		}
		row := []string{q.Category, q.Question, q.ExpectedAnswer, q.ActualAnswer, passed}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
