package evaluation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRun(t *testing.T) *TestRun {
	t.Helper()
	run, err := NewTestRun(uuid.New(), uuid.New())
	require.NoError(t, err)
	return run
}

func TestNewTestRun(t *testing.T) {
	run := newRun(t)

	assert.Equal(t, RunStatusGenerating, run.Status)
	assert.Nil(t, run.Metrics)
	assert.Empty(t, run.ErrorMessage)
	assert.False(t, run.IsTerminal())
}

func TestNewTestRun_RequiresProduct(t *testing.T) {
	_, err := NewTestRun(uuid.New(), uuid.Nil)
	assert.Error(t, err)
}

func TestTestRun_SuccessPath(t *testing.T) {
	run := newRun(t)

	require.NoError(t, run.Start())
	assert.Equal(t, RunStatusRunning, run.Status)

	require.NoError(t, run.BeginEvaluation())
	assert.Equal(t, RunStatusEvaluating, run.Status)

	metrics := RunMetrics{
		OverallScore:     0.85,
		ScoresByCategory: map[string]float64{"accuracy": 0.9, "tone": 0.8},
		TotalCost:        1.23,
		DurationSeconds:  420,
	}
	require.NoError(t, run.Complete(metrics))

	assert.Equal(t, RunStatusCompleted, run.Status)
	assert.True(t, run.IsTerminal())
	require.NotNil(t, run.Metrics)
	assert.Equal(t, 0.85, run.Metrics.OverallScore)
	require.NotNil(t, run.FinishedAt)
}

func TestTestRun_CannotSkipPhases(t *testing.T) {
	run := newRun(t)

	err := run.Complete(RunMetrics{})
	assert.Error(t, err)
	assert.Equal(t, RunStatusGenerating, run.Status)
	assert.Nil(t, run.Metrics)

	err = run.BeginEvaluation()
	assert.Error(t, err)
}

func TestTestRun_FailFromAnyNonTerminalState(t *testing.T) {
	for _, setup := range []func(r *TestRun){
		func(r *TestRun) {},
		func(r *TestRun) { _ = r.Start() },
		func(r *TestRun) { _ = r.Start(); _ = r.BeginEvaluation() },
	} {
		run := newRun(t)
		setup(run)

		require.NoError(t, run.Fail("model endpoint unreachable"))
		assert.Equal(t, RunStatusFailed, run.Status)
		assert.Equal(t, "model endpoint unreachable", run.ErrorMessage)
		assert.Nil(t, run.Metrics)
	}
}

func TestTestRun_TerminalStatesAreFinal(t *testing.T) {
	run := newRun(t)
	require.NoError(t, run.Fail("boom"))

	assert.Error(t, run.Start())
	assert.Error(t, run.Fail("again"))

	completed := newRun(t)
	require.NoError(t, completed.Start())
	require.NoError(t, completed.BeginEvaluation())
	require.NoError(t, completed.Complete(RunMetrics{OverallScore: 1}))

	assert.Error(t, completed.Fail("too late"))
}

func TestTestRun_Deletable(t *testing.T) {
	run := newRun(t)
	assert.False(t, run.Deletable())

	require.NoError(t, run.Start())
	assert.False(t, run.Deletable())

	require.NoError(t, run.Fail("x"))
	assert.True(t, run.Deletable())
}

func TestRunStatus_Transitions(t *testing.T) {
	assert.True(t, RunStatusGenerating.CanTransitionTo(RunStatusRunning))
	assert.True(t, RunStatusRunning.CanTransitionTo(RunStatusEvaluating))
	assert.True(t, RunStatusEvaluating.CanTransitionTo(RunStatusCompleted))
	assert.True(t, RunStatusGenerating.CanTransitionTo(RunStatusFailed))

	assert.False(t, RunStatusGenerating.CanTransitionTo(RunStatusCompleted))
	assert.False(t, RunStatusCompleted.CanTransitionTo(RunStatusFailed))
	assert.False(t, RunStatusFailed.CanTransitionTo(RunStatusGenerating))
}

func TestRunStatus_IsValid(t *testing.T) {
	for _, s := range AllRunStatuses() {
		assert.True(t, s.IsValid())
	}
	assert.False(t, RunStatus("paused").IsValid())
}

func TestTestQuestion_Evaluate(t *testing.T) {
	q, err := NewTestQuestion(uuid.New(), "accuracy", "What is the refund policy?", "30 days")
	require.NoError(t, err)
	assert.False(t, q.IsEvaluated())

	q.Evaluate("Refunds within 30 days", true)
	assert.True(t, q.IsEvaluated())
	require.NotNil(t, q.Passed)
	assert.True(t, *q.Passed)
}

func TestNewTestQuestion_Validation(t *testing.T) {
	_, err := NewTestQuestion(uuid.Nil, "c", "q", "a")
	assert.Error(t, err)

	_, err = NewTestQuestion(uuid.New(), "c", "", "a")
	assert.Error(t, err)
}
