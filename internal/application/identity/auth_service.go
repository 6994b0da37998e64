package identity

import (
	"context"
	"errors"

	"github.com/docuchat/backend/internal/domain/identity"
	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/docuchat/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService handles login and logout for both account kinds: admin
// console users and portal customers. Credential failures are reported
// uniformly as INVALID_CREDENTIALS so the response does not reveal
// whether the email exists.
type AuthService struct {
	userRepo     identity.UserRepository
	customerRepo identity.CustomerRepository
	tenantRepo   identity.TenantRepository
	jwtService   *auth.JWTService
	blacklist    auth.TokenBlacklist
	logger       *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	customerRepo identity.CustomerRepository,
	tenantRepo identity.TenantRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		userRepo:     userRepo,
		customerRepo: customerRepo,
		tenantRepo:   tenantRepo,
		jwtService:   jwtService,
		blacklist:    blacklist,
		logger:       logger,
	}
}

// Login authenticates an admin console user
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Warn("login failed, user not found", zap.String("email", req.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}
	if !user.CheckPassword(req.Password) {
		s.logger.Warn("login failed, wrong password", zap.String("email", req.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}
	if !user.IsActive {
		return nil, shared.NewDomainError("FORBIDDEN", "Account has been deactivated")
	}
	if err := s.checkTenantActive(ctx, user.TenantID.String()); err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(auth.GenerateTokenInput{
		TenantID:    user.TenantID,
		SubjectID:   user.ID,
		SubjectType: auth.SubjectUser,
		Email:       user.Email,
	})
	if err != nil {
		s.logger.Error("failed to generate token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate session token")
	}

	user.RecordLogin()
	if err := s.userRepo.Save(ctx, user); err != nil {
		// Login still succeeds, the stamp is best effort
		s.logger.Error("failed to record login time", zap.Error(err))
	}

	s.logger.Info("user logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("tenant_id", user.TenantID.String()))

	return &LoginResponse{
		Token:     token.Value,
		TokenType: token.TokenType,
		ExpiresAt: token.ExpiresAt,
		Account: AccountInfo{
			ID:       user.ID,
			TenantID: user.TenantID,
			Email:    user.Email,
			Name:     user.Name,
		},
	}, nil
}

// CustomerLogin authenticates a portal customer
func (s *AuthService) CustomerLogin(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	customer, err := s.customerRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Warn("customer login failed, not found", zap.String("email", req.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}
	if !customer.CheckPassword(req.Password) {
		s.logger.Warn("customer login failed, wrong password", zap.String("email", req.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}
	if !customer.IsActive {
		return nil, shared.NewDomainError("FORBIDDEN", "Account has been deactivated")
	}
	if err := s.checkTenantActive(ctx, customer.TenantID.String()); err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(auth.GenerateTokenInput{
		TenantID:    customer.TenantID,
		SubjectID:   customer.ID,
		SubjectType: auth.SubjectCustomer,
		Email:       customer.Email,
	})
	if err != nil {
		s.logger.Error("failed to generate token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate session token")
	}

	customer.RecordLogin()
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		s.logger.Error("failed to record login time", zap.Error(err))
	}

	s.logger.Info("customer logged in",
		zap.String("customer_id", customer.ID.String()),
		zap.String("tenant_id", customer.TenantID.String()))

	return &LoginResponse{
		Token:     token.Value,
		TokenType: token.TokenType,
		ExpiresAt: token.ExpiresAt,
		Account: AccountInfo{
			ID:       customer.ID,
			TenantID: customer.TenantID,
			Email:    customer.Email,
			Name:     customer.Name,
		},
	}, nil
}

// Logout revokes the session token by blacklisting its JTI for the
// token's remaining lifetime
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := claims.GetRemainingTTL()
	if ttl <= 0 {
		// Already expired, nothing to revoke
		return nil
	}
	if err := s.blacklist.AddToBlacklist(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("failed to blacklist token", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke session token")
	}

	s.logger.Info("session revoked",
		zap.String("subject_id", claims.SubjectID),
		zap.Duration("ttl", ttl))
	return nil
}

func (s *AuthService) checkTenantActive(ctx context.Context, tenantID string) error {
	id, err := uuid.Parse(tenantID)
	if err != nil {
		return shared.NewDomainError("INTERNAL_ERROR", "Invalid tenant reference")
	}
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("FORBIDDEN", "Tenant no longer exists")
		}
		return err
	}
	if !tenant.IsActive {
		return shared.NewDomainError("FORBIDDEN", "Tenant has been deactivated")
	}
	return nil
}
