package chat

import (
	"context"
	"fmt"

	"github.com/docuchat/backend/internal/domain/chat"
	"github.com/docuchat/backend/internal/domain/document"
	"github.com/docuchat/backend/internal/domain/evaluation"
	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatService serves chat history and usage analytics for the admin console
type ChatService struct {
	chatLogRepo chat.ChatLogRepository
	docRepo     document.DocumentRepository
	runRepo     evaluation.TestRunRepository
	logger      *zap.Logger
}

// NewChatService creates a new ChatService
func NewChatService(
	chatLogRepo chat.ChatLogRepository,
	docRepo document.DocumentRepository,
	runRepo evaluation.TestRunRepository,
	logger *zap.Logger,
) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{
		chatLogRepo: chatLogRepo,
		docRepo:     docRepo,
		runRepo:     runRepo,
		logger:      logger,
	}
}

// ListChatLogs returns the tenant's chat exchanges, newest first,
// optionally narrowed to one product
func (s *ChatService) ListChatLogs(ctx context.Context, tenantID uuid.UUID, req ListChatLogsRequest) ([]ChatLogResponse, int64, error) {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	if req.ProductID != "" {
		productID, err := uuid.Parse(req.ProductID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "Invalid product ID: "+req.ProductID)
		}
		filter.Filters["product_id"] = productID
	}

	logs, err := s.chatLogRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list chat logs: %w", err)
	}
	total, err := s.chatLogRepo.CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count chat logs: %w", err)
	}

	items := make([]ChatLogResponse, len(logs))
	for i := range logs {
		items[i] = toChatLogResponse(&logs[i])
	}
	return items, total, nil
}

// GetUsageSummary counts the tenant's chats, documents and test runs.
// The three counts are independent snapshots, not a transaction.
func (s *ChatService) GetUsageSummary(ctx context.Context, tenantID uuid.UUID) (*UsageSummaryResponse, error) {
	filter := shared.DefaultFilter()

	chats, err := s.chatLogRepo.CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count chat logs: %w", err)
	}
	docs, err := s.docRepo.CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}
	runs, err := s.runRepo.CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count test runs: %w", err)
	}

	return &UsageSummaryResponse{
		ChatCount:     chats,
		DocumentCount: docs,
		TestRunCount:  runs,
	}, nil
}
