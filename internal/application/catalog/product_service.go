package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/docuchat/backend/internal/domain/catalog"
	"github.com/docuchat/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductService manages a tenant's chat products from the admin console
type ProductService struct {
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, logger *zap.Logger) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create registers a new chat product for the tenant
func (s *ProductService) Create(ctx context.Context, tenantID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(tenantID, req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	product.SystemPrompt = req.SystemPrompt

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	s.logger.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("tenant_id", tenantID.String()))

	resp := toProductResponse(product)
	return &resp, nil
}

// Get returns a single product owned by the tenant
func (s *ProductService) Get(ctx context.Context, tenantID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.findOwnedProduct(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// List returns the tenant's products, newest first
func (s *ProductService) List(ctx context.Context, tenantID uuid.UUID, req ListProductsRequest) ([]ProductResponse, int64, error) {
	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}

	products, err := s.productRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	total, err := s.productRepo.CountForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	items := make([]ProductResponse, len(products))
	for i := range products {
		items[i] = toProductResponse(&products[i])
	}
	return items, total, nil
}

// Update replaces the editable fields of a product
func (s *ProductService) Update(ctx context.Context, tenantID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.findOwnedProduct(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.Name, req.Description, req.SystemPrompt); err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		if *req.IsActive {
			product.Activate()
		} else {
			product.Deactivate()
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	resp := toProductResponse(product)
	return &resp, nil
}

// Delete removes a product owned by the tenant
func (s *ProductService) Delete(ctx context.Context, tenantID, productID uuid.UUID) error {
	if _, err := s.findOwnedProduct(ctx, tenantID, productID); err != nil {
		return err
	}

	if err := s.productRepo.DeleteForTenant(ctx, tenantID, productID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info("product deleted",
		zap.String("product_id", productID.String()),
		zap.String("tenant_id", tenantID.String()))
	return nil
}

func (s *ProductService) findOwnedProduct(ctx context.Context, tenantID, productID uuid.UUID) (*catalog.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if !product.BelongsTo(tenantID) {
		return nil, shared.ErrForbidden
	}
	return product, nil
}
