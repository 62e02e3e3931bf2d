package catalog

import (
	_ "embed"
	"encoding/json"
	"os"
)

// products.json is the bundled catalog shipped with the binary.
//
//go:embed products.json
var bundledCatalog []byte

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
}

type ProductRepository interface {
	GetAllProducts() []Product
	GetProductById(productID string) (*Product, bool)
}

type productRepository struct {
	products []Product
}

// NewProductRepository loads the catalog once. When path is empty the bundled
// catalog is used. A missing or malformed catalog yields an empty repository,
// never an error: the service must still start.
func NewProductRepository(path string) (ProductRepository, error) {
	raw := bundledCatalog
	if path != "" {
		fileRaw, err := os.ReadFile(path)
		if err != nil {
			return &productRepository{}, err
		}
		raw = fileRaw
	}

	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return &productRepository{}, err
	}
	return &productRepository{products: products}, nil
}

func (r *productRepository) GetAllProducts() []Product {
	return r.products
}

func (r *productRepository) GetProductById(productID string) (*Product, bool) {
	// The catalog is small and static, a linear scan is enough.
	for i := range r.products {
		if r.products[i].ID == productID {
			return &r.products[i], true
		}
	}
	return nil, false
}
