package identity

import (
	"context"
	"testing"
	"time"

	domain "github.com/docuchat/backend/internal/domain/identity"
	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/docuchat/backend/internal/infrastructure/auth"
	"github.com/docuchat/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]domain.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockUserRepository) Save(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]domain.User, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockUserRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockCustomerRepository struct {
	mock.Mock
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *mockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]domain.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *mockCustomerRepository) Save(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *mockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCustomerRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*domain.Customer, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *mockCustomerRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]domain.Customer, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *mockCustomerRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

type mockTenantRepository struct {
	mock.Mock
}

func (m *mockTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *mockTenantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]domain.Tenant, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Tenant), args.Error(1)
}

func (m *mockTenantRepository) Save(ctx context.Context, tenant *domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *mockTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTenantRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTenantRepository) FindBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

type authFixture struct {
	userRepo     *mockUserRepository
	customerRepo *mockCustomerRepository
	tenantRepo   *mockTenantRepository
	blacklist    *auth.InMemoryTokenBlacklist
	jwtService   *auth.JWTService
	service      *AuthService
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		userRepo:     new(mockUserRepository),
		customerRepo: new(mockCustomerRepository),
		tenantRepo:   new(mockTenantRepository),
		blacklist:    auth.NewInMemoryTokenBlacklist(),
	}
	f.jwtService = auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		Expiration: time.Hour,
		Issuer:     "docuchat-test",
	})
	f.service = NewAuthService(f.userRepo, f.customerRepo, f.tenantRepo, f.jwtService, f.blacklist, nil)
	return f
}

func activeTenant(t *testing.T) *domain.Tenant {
	t.Helper()
	tenant, err := domain.NewTenant("Acme Corp", "acme")
	require.NoError(t, err)
	return tenant
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials yield a usable token", func(t *testing.T) {
		f := newAuthFixture()
		tenant := activeTenant(t)
		user, err := domain.NewUser(tenant.ID, "admin@acme.test", "s3cret-pass", "Admin")
		require.NoError(t, err)

		f.userRepo.On("FindByEmail", ctx, "admin@acme.test").Return(user, nil)
		f.tenantRepo.On("FindByID", ctx, tenant.ID).Return(tenant, nil)
		f.userRepo.On("Save", ctx, user).Return(nil)

		resp, err := f.service.Login(ctx, LoginRequest{Email: "admin@acme.test", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, user.ID, resp.Account.ID)
		require.NotNil(t, user.LastLoginAt)

		claims, err := f.jwtService.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, tenant.ID.String(), claims.TenantID)
		assert.Equal(t, auth.SubjectUser, claims.SubjectType)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		f := newAuthFixture()
		tenant := activeTenant(t)
		user, err := domain.NewUser(tenant.ID, "admin@acme.test", "s3cret-pass", "Admin")
		require.NoError(t, err)

		f.userRepo.On("FindByEmail", ctx, "ghost@acme.test").Return(nil, shared.ErrNotFound)
		f.userRepo.On("FindByEmail", ctx, "admin@acme.test").Return(user, nil)

		_, err1 := f.service.Login(ctx, LoginRequest{Email: "ghost@acme.test", Password: "whatever"})
		_, err2 := f.service.Login(ctx, LoginRequest{Email: "admin@acme.test", Password: "wrong"})

		var de1, de2 *shared.DomainError
		require.ErrorAs(t, err1, &de1)
		require.ErrorAs(t, err2, &de2)
		assert.Equal(t, de1.Code, de2.Code)
		assert.Equal(t, de1.Message, de2.Message)
	})

	t.Run("deactivated account is rejected", func(t *testing.T) {
		f := newAuthFixture()
		tenant := activeTenant(t)
		user, err := domain.NewUser(tenant.ID, "admin@acme.test", "s3cret-pass", "Admin")
		require.NoError(t, err)
		user.IsActive = false

		f.userRepo.On("FindByEmail", ctx, "admin@acme.test").Return(user, nil)

		_, err = f.service.Login(ctx, LoginRequest{Email: "admin@acme.test", Password: "s3cret-pass"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
	})

	t.Run("deactivated tenant blocks all logins", func(t *testing.T) {
		f := newAuthFixture()
		tenant := activeTenant(t)
		tenant.Deactivate()
		user, err := domain.NewUser(tenant.ID, "admin@acme.test", "s3cret-pass", "Admin")
		require.NoError(t, err)

		f.userRepo.On("FindByEmail", ctx, "admin@acme.test").Return(user, nil)
		f.tenantRepo.On("FindByID", ctx, tenant.ID).Return(tenant, nil)

		_, err = f.service.Login(ctx, LoginRequest{Email: "admin@acme.test", Password: "s3cret-pass"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
	})
}

func TestAuthService_CustomerLogin(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	tenant := activeTenant(t)
	customer, err := domain.NewCustomer(tenant.ID, "buyer@shop.test", "s3cret-pass", "Buyer")
	require.NoError(t, err)

	f.customerRepo.On("FindByEmail", ctx, "buyer@shop.test").Return(customer, nil)
	f.tenantRepo.On("FindByID", ctx, tenant.ID).Return(tenant, nil)
	f.customerRepo.On("Save", ctx, customer).Return(nil)

	resp, err := f.service.CustomerLogin(ctx, LoginRequest{Email: "buyer@shop.test", Password: "s3cret-pass"})
	require.NoError(t, err)

	claims, err := f.jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.SubjectCustomer, claims.SubjectType)
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()

	token, err := f.jwtService.GenerateToken(auth.GenerateTokenInput{
		TenantID:    uuid.New(),
		SubjectID:   uuid.New(),
		SubjectType: auth.SubjectUser,
	})
	require.NoError(t, err)

	claims, err := f.jwtService.ValidateToken(token.Value)
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(ctx, claims))

	blacklisted, err := f.blacklist.IsBlacklisted(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, blacklisted)
}

func TestDirectoryService_ResolveTenant(t *testing.T) {
	ctx := context.Background()

	t.Run("maps email to tenant", func(t *testing.T) {
		f := newAuthFixture()
		svc := NewDirectoryService(f.customerRepo, f.tenantRepo, nil)
		tenant := activeTenant(t)
		customer, err := domain.NewCustomer(tenant.ID, "buyer@shop.test", "s3cret-pass", "Buyer")
		require.NoError(t, err)

		f.customerRepo.On("FindByEmail", ctx, "buyer@shop.test").Return(customer, nil)
		f.tenantRepo.On("FindByID", ctx, tenant.ID).Return(tenant, nil)

		res, err := svc.ResolveTenant(ctx, "buyer@shop.test")
		require.NoError(t, err)
		assert.Equal(t, tenant.ID, res.TenantID)
		assert.True(t, res.IsActive)
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		f := newAuthFixture()
		svc := NewDirectoryService(f.customerRepo, f.tenantRepo, nil)
		f.customerRepo.On("FindByEmail", ctx, "ghost@shop.test").Return(nil, shared.ErrNotFound)

		_, err := svc.ResolveTenant(ctx, "ghost@shop.test")
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})

	t.Run("inactive tenant marks the resolution inactive", func(t *testing.T) {
		f := newAuthFixture()
		svc := NewDirectoryService(f.customerRepo, f.tenantRepo, nil)
		tenant := activeTenant(t)
		tenant.Deactivate()
		customer, err := domain.NewCustomer(tenant.ID, "buyer@shop.test", "s3cret-pass", "Buyer")
		require.NoError(t, err)

		f.customerRepo.On("FindByEmail", ctx, "buyer@shop.test").Return(customer, nil)
		f.tenantRepo.On("FindByID", ctx, tenant.ID).Return(tenant, nil)

		res, err := svc.ResolveTenant(ctx, "buyer@shop.test")
		require.NoError(t, err)
		assert.False(t, res.IsActive)
	})
}
