package chat

import (
	"context"
	"testing"

	domain "github.com/docuchat/backend/internal/domain/chat"
	"github.com/docuchat/backend/internal/domain/document"
	"github.com/docuchat/backend/internal/domain/evaluation"
	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockChatLogRepository struct {
	mock.Mock
}

func (m *mockChatLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.ChatLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatLog), args.Error(1)
}

func (m *mockChatLogRepository) FindAll(ctx context.Context, filter shared.Filter) ([]domain.ChatLog, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.ChatLog), args.Error(1)
}

func (m *mockChatLogRepository) Save(ctx context.Context, log *domain.ChatLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *mockChatLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockChatLogRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockChatLogRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*domain.ChatLog, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatLog), args.Error(1)
}

func (m *mockChatLogRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]domain.ChatLog, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]domain.ChatLog), args.Error(1)
}

func (m *mockChatLogRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockChatLogRepository) CountByProduct(ctx context.Context, tenantID, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID, productID)
	return args.Get(0).(int64), args.Error(1)
}

type mockDocumentRepository struct {
	mock.Mock
}

func (m *mockDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Document), args.Error(1)
}

func (m *mockDocumentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]document.Document, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]document.Document), args.Error(1)
}

func (m *mockDocumentRepository) Save(ctx context.Context, doc *document.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *mockDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockDocumentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDocumentRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*document.Document, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Document), args.Error(1)
}

func (m *mockDocumentRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]document.Document, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]document.Document), args.Error(1)
}

func (m *mockDocumentRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDocumentRepository) FindInFlight(ctx context.Context, tenantID uuid.UUID) ([]document.Document, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]document.Document), args.Error(1)
}

func (m *mockDocumentRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

type mockTestRunRepository struct {
	mock.Mock
}

func (m *mockTestRunRepository) FindByID(ctx context.Context, id uuid.UUID) (*evaluation.TestRun, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*evaluation.TestRun), args.Error(1)
}

func (m *mockTestRunRepository) FindAll(ctx context.Context, filter shared.Filter) ([]evaluation.TestRun, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]evaluation.TestRun), args.Error(1)
}

func (m *mockTestRunRepository) Save(ctx context.Context, run *evaluation.TestRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *mockTestRunRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTestRunRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTestRunRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*evaluation.TestRun, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*evaluation.TestRun), args.Error(1)
}

func (m *mockTestRunRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]evaluation.TestRun, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]evaluation.TestRun), args.Error(1)
}

func (m *mockTestRunRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTestRunRepository) DeleteWithQuestions(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestChatService_ListChatLogs(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	productID := uuid.New()

	t.Run("returns tenant logs with total", func(t *testing.T) {
		logRepo := new(mockChatLogRepository)
		svc := NewChatService(logRepo, new(mockDocumentRepository), new(mockTestRunRepository), nil)

		entry, err := domain.NewChatLog(tenantID, productID, "buyer@shop.test", "What is the refund policy?", "30 days.")
		require.NoError(t, err)

		logRepo.On("FindAllForTenant", ctx, tenantID, mock.AnythingOfType("shared.Filter")).
			Return([]domain.ChatLog{*entry}, nil)
		logRepo.On("CountForTenant", ctx, tenantID, mock.AnythingOfType("shared.Filter")).
			Return(int64(1), nil)

		items, total, err := svc.ListChatLogs(ctx, tenantID, ListChatLogsRequest{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		assert.Equal(t, "What is the refund policy?", items[0].Question)
	})

	t.Run("product filter is applied when given", func(t *testing.T) {
		logRepo := new(mockChatLogRepository)
		svc := NewChatService(logRepo, new(mockDocumentRepository), new(mockTestRunRepository), nil)

		logRepo.On("FindAllForTenant", ctx, tenantID, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Filters["product_id"] == productID
		})).Return([]domain.ChatLog{}, nil)
		logRepo.On("CountForTenant", ctx, tenantID, mock.AnythingOfType("shared.Filter")).
			Return(int64(0), nil)

		_, _, err := svc.ListChatLogs(ctx, tenantID, ListChatLogsRequest{ProductID: productID.String()})
		require.NoError(t, err)
		logRepo.AssertExpectations(t)
	})

	t.Run("malformed product id is rejected", func(t *testing.T) {
		logRepo := new(mockChatLogRepository)
		svc := NewChatService(logRepo, new(mockDocumentRepository), new(mockTestRunRepository), nil)

		_, _, err := svc.ListChatLogs(ctx, tenantID, ListChatLogsRequest{ProductID: "not-a-uuid"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})
}

func TestChatService_GetUsageSummary(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	logRepo := new(mockChatLogRepository)
	docRepo := new(mockDocumentRepository)
	runRepo := new(mockTestRunRepository)
	svc := NewChatService(logRepo, docRepo, runRepo, nil)

	logRepo.On("CountForTenant", ctx, tenantID, mock.AnythingOfType("shared.Filter")).Return(int64(42), nil)
	docRepo.On("CountForTenant", ctx, tenantID, mock.AnythingOfType("shared.Filter")).Return(int64(7), nil)
	runRepo.On("CountForTenant", ctx, tenantID, mock.AnythingOfType("shared.Filter")).Return(int64(3), nil)

	summary, err := svc.GetUsageSummary(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), summary.ChatCount)
	assert.Equal(t, int64(7), summary.DocumentCount)
	assert.Equal(t, int64(3), summary.TestRunCount)
}
