package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/docuchat/backend/internal/domain/evaluation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportFixture(t *testing.T) (*evaluation.TestRun, []evaluation.TestQuestion) {
	t.Helper()

	run, err := evaluation.NewTestRun(uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, run.Start())
	require.NoError(t, run.BeginEvaluation())
	require.NoError(t, run.Complete(evaluation.RunMetrics{
		OverallScore:     0.875,
		ScoresByCategory: map[string]float64{"pricing": 0.75, "features": 1.0},
		TotalCost:        2.31,
		DurationSeconds:  640,
	}))

	q1, err := evaluation.NewTestQuestion(run.ID, "pricing", "What does the starter plan cost?", "It costs $29 per month.")
	require.NoError(t, err)
	q1.Evaluate("The starter plan is $29/month.", true)

	q2, err := evaluation.NewTestQuestion(run.ID, "features", "Does the product support SSO?", "Yes, via SAML.")
	require.NoError(t, err)
	q2.Evaluate("I do not know.", false)

	q3, err := evaluation.NewTestQuestion(run.ID, "features", "Is there an API?", "Yes.")
	require.NoError(t, err)

	return run, []evaluation.TestQuestion{*q1, *q2, *q3}
}

func TestGenerator_CSV(t *testing.T) {
	gen := NewGenerator()
	run, questions := reportFixture(t)

	data, err := gen.Generate(run, questions, "Acme Corp", evaluation.ReportFormatCSV)
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"run_id", run.ID.String()}, records[0])
	assert.Equal(t, []string{"status", "completed"}, records[1])
	assert.Equal(t, []string{"overall_score", "0.8750"}, records[2])

	header := []string{"category", "question", "expected_answer", "actual_answer", "passed"}
	headerIdx := -1
	for i, rec := range records {
		if len(rec) == len(header) && rec[0] == header[0] && rec[4] == header[4] {
			headerIdx = i
			break
		}
	}
	require.GreaterOrEqual(t, headerIdx, 0, "question header row missing")

	rows := records[headerIdx+1:]
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"pricing", "What does the starter plan cost?", "It costs $29 per month.", "The starter plan is $29/month.", "true"}, rows[0])
	assert.Equal(t, "false", rows[1][4])
	assert.Equal(t, "", rows[2][4], "unevaluated question has empty outcome")
}

func TestGenerator_CSV_CategoryScoresSorted(t *testing.T) {
	gen := NewGenerator()
	run, _ := reportFixture(t)

	data, err := gen.Generate(run, nil, "Acme Corp", evaluation.ReportFormatCSV)
	require.NoError(t, err)

	text := string(data)
	featuresIdx := bytes.Index(data, []byte("score:features"))
	pricingIdx := bytes.Index(data, []byte("score:pricing"))
	require.Contains(t, text, "score:features")
	require.Contains(t, text, "score:pricing")
	assert.Less(t, featuresIdx, pricingIdx)
}

func TestGenerator_PDF(t *testing.T) {
	gen := NewGenerator()
	run, questions := reportFixture(t)

	data, err := gen.Generate(run, questions, "Acme Corp", evaluation.ReportFormatPDF)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output is not a PDF document")
}

func TestGenerator_UnknownFormat(t *testing.T) {
	gen := NewGenerator()
	run, questions := reportFixture(t)

	_, err := gen.Generate(run, questions, "Acme Corp", evaluation.ReportFormat("docx"))
	assert.Error(t, err)
}
