package catalog

import (
	"context"

	"go-order-intake/src/infrastructure/log"
)

type CatalogService interface {
	GetAllProducts(ctx context.Context) []Product
	GetProduct(ctx context.Context, productID string) (*Product, bool)
}

type catalogService struct {
	logger            log.Logger
	productRepository ProductRepository
}

func NewCatalogService(logger log.Logger, productRepo ProductRepository) CatalogService {
	return &catalogService{
		logger:            logger,
		productRepository: productRepo,
	}
}

// GetAllProducts returns the full catalog.
func (s *catalogService) GetAllProducts(ctx context.Context) []Product {
	return s.productRepository.GetAllProducts()
}

// GetProduct returns the product with the given ID, or false if none exists.
func (s *catalogService) GetProduct(ctx context.Context, productID string) (*Product, bool) {
	return s.productRepository.GetProductById(productID)
}
