package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/docuchat/backend/internal/domain/evaluation"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Generator renders completed test runs into downloadable reports.
// It is a pure transformation over the run and its questions; it does
// no I/O of its own.
type Generator struct{}

// NewGenerator creates a new Generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the run in the requested format
func (g *Generator) Generate(run *evaluation.TestRun, questions []evaluation.TestQuestion, tenantName string, format evaluation.ReportFormat) ([]byte, error) {
	switch format {
	case evaluation.ReportFormatCSV:
		return renderCSV(run, questions)
	case evaluation.ReportFormatPDF:
		return renderPDF(run, questions, tenantName)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func renderPDF(run *evaluation.TestRun, questions []evaluation.TestQuestion, tenantName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "QA Test Report", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	finished := "-"
	if run.FinishedAt != nil {
		finished = run.FinishedAt.Format(time.RFC3339)
	}
	m.AddRow(24,
		col.New(6).Add(
			text.New("Tenant: "+tenantName, props.Text{Top: 0}),
			text.New("Run: "+run.ID.String(), props.Text{Top: 4}),
			text.New("Started: "+run.StartedAt.Format(time.RFC3339), props.Text{Top: 8}),
			text.New("Finished: "+finished, props.Text{Top: 12}),
		),
		col.New(6),
	)

	if run.Metrics != nil {
		m.AddRow(10,
			text.NewCol(12, fmt.Sprintf("Overall score: %.1f%%", run.Metrics.OverallScore*100), props.Text{
				Size:  14,
				Style: fontstyle.Bold,
			}),
		)
		m.AddRow(8,
			text.NewCol(6, fmt.Sprintf("Total cost: $%.2f", run.Metrics.TotalCost), props.Text{Size: 9}),
			text.NewCol(6, fmt.Sprintf("Duration: %ds", run.Metrics.DurationSeconds), props.Text{Size: 9}),
		)

		for _, category := range sortedCategories(run.Metrics.ScoresByCategory) {
			m.AddRow(6,
				text.NewCol(6, category, props.Text{Size: 9}),
				text.NewCol(6, fmt.Sprintf("%.1f%%", run.Metrics.ScoresByCategory[category]*100), props.Text{
					Size:  9,
					Align: align.Right,
				}),
			)
		}
	}

	passed, failed := countOutcomes(questions)
	m.AddRow(10,
		text.NewCol(12, fmt.Sprintf("Questions: %d total, %d passed, %d failed", len(questions), passed, failed), props.Text{
			Size: 10,
			Top:  2,
		}),
	)

	m.AddRow(8,
		text.NewCol(2, "Category", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(5, "Question", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(4, "Answer", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(1, "Result", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for i := range questions {
		q := &questions[i]
		m.AddRow(12,
			text.NewCol(2, q.Category, props.Text{Size: 8}),
			text.NewCol(5, q.Question, props.Text{Size: 8}),
			text.NewCol(4, q.ActualAnswer, props.Text{Size: 8}),
			text.NewCol(1, outcomeLabel(q), props.Text{Size: 8, Align: align.Right}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func sortedCategories(scores map[string]float64) []string {
	categories := make([]string, 0, len(scores))
	for category := range scores {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

func countOutcomes(questions []evaluation.TestQuestion) (passed, failed int) {
	for i := range questions {
		if questions[i].Passed == nil {
			continue
		}
		if *questions[i].Passed {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

func outcomeLabel(q *evaluation.TestQuestion) string {
	if q.Passed == nil {
		return "-"
	}
	if *q.Passed {
		return "PASS"
	}
	return "FAIL"
}
