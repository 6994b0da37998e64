package models

import (
	"encoding/json"
	"time"

	"github.com/docuchat/backend/internal/domain/evaluation"
	"github.com/google/uuid"
)

// TestRunModel is the persistence model for the TestRun domain entity.
// Metrics are stored as a JSON document since they only exist for
// completed runs and their category map is open-ended.
type TestRunModel struct {
	TenantModelBase
	ProductID    uuid.UUID            `gorm:"type:uuid;not null;index"`
	Status       evaluation.RunStatus `gorm:"type:varchar(20);not null;index"`
	Metrics      *string              `gorm:"type:jsonb"`
	ErrorMessage string               `gorm:"type:text"`
	StartedAt    time.Time            `gorm:"not null"`
	FinishedAt   *time.Time           `gorm:""`
}

// TableName returns the table name for GORM
func (TestRunModel) TableName() string {
	return "test_runs"
}

// ToDomain converts the persistence model to a domain TestRun entity.
func (m *TestRunModel) ToDomain() *evaluation.TestRun {
	run := &evaluation.TestRun{
		TenantEntity: m.ToDomainTenantEntity(),
		ProductID:    m.ProductID,
		Status:       m.Status,
		ErrorMessage: m.ErrorMessage,
		StartedAt:    m.StartedAt,
		FinishedAt:   m.FinishedAt,
	}
	if m.Metrics != nil && *m.Metrics != "" {
		var metrics evaluation.RunMetrics
		if err := json.Unmarshal([]byte(*m.Metrics), &metrics); err == nil {
			run.Metrics = &metrics
		}
	}
	return run
}

// FromDomain populates the persistence model from a domain TestRun entity.
func (m *TestRunModel) FromDomain(r *evaluation.TestRun) {
	m.FromDomainTenantEntity(r.TenantEntity)
	m.ProductID = r.ProductID
	m.Status = r.Status
	m.ErrorMessage = r.ErrorMessage
	m.StartedAt = r.StartedAt
	m.FinishedAt = r.FinishedAt
	m.Metrics = nil
	if r.Metrics != nil {
		if raw, err := json.Marshal(r.Metrics); err == nil {
			s := string(raw)
			m.Metrics = &s
		}
	}
}

// TestRunModelFromDomain creates a new persistence model from a domain TestRun entity.
func TestRunModelFromDomain(r *evaluation.TestRun) *TestRunModel {
	m := &TestRunModel{}
	m.FromDomain(r)
	return m
}

// TestQuestionModel is the persistence model for the TestQuestion entity.
// Passed stays NULL until the question has been evaluated.
type TestQuestionModel struct {
	BaseModel
	RunID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Category       string    `gorm:"type:varchar(100);not null;index"`
	Question       string    `gorm:"type:text;not null"`
	ExpectedAnswer string    `gorm:"type:text"`
	ActualAnswer   string    `gorm:"type:text"`
	Passed         *bool     `gorm:"index"`
}

// TableName returns the table name for GORM
func (TestQuestionModel) TableName() string {
	return "test_questions"
}

// ToDomain converts the persistence model to a domain TestQuestion entity.
func (m *TestQuestionModel) ToDomain() *evaluation.TestQuestion {
	return &evaluation.TestQuestion{
		BaseEntity:     m.BaseModel.ToDomain(),
		RunID:          m.RunID,
		Category:       m.Category,
		Question:       m.Question,
		ExpectedAnswer: m.ExpectedAnswer,
		ActualAnswer:   m.ActualAnswer,
		Passed:         m.Passed,
	}
}

// FromDomain populates the persistence model from a domain TestQuestion entity.
func (m *TestQuestionModel) FromDomain(q *evaluation.TestQuestion) {
	m.FromDomainBaseEntity(q.BaseEntity)
	m.RunID = q.RunID
	m.Category = q.Category
	m.Question = q.Question
	m.ExpectedAnswer = q.ExpectedAnswer
	m.ActualAnswer = q.ActualAnswer
	m.Passed = q.Passed
}

// TestQuestionModelFromDomain creates a new persistence model from a domain TestQuestion entity.
func TestQuestionModelFromDomain(q *evaluation.TestQuestion) *TestQuestionModel {
	m := &TestQuestionModel{}
	m.FromDomain(q)
	return m
}
