package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"
	"go-product-catalog/internal/storage"
	"go-product-catalog/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrProductNotFound signals that the identifier does not resolve to a live
// (non soft-deleted) record.
var ErrProductNotFound = errors.New("product not found")

// ValidationError marks input the caller has to fix. Handlers map it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// searchLimit caps free-text search results. Search is not paginated.
const searchLimit = 20

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

type ProductPage struct {
	Products   []model.Product `json:"products"`
	Pagination Pagination      `json:"pagination"`
}

// UpdateProductInput uses pointers so omitted fields are distinguishable from
// zero values: nil means "keep the stored value".
type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock"`
}

type CatalogService interface {
	ListProducts(page, limit int, category string) (*ProductPage, error)
	GetProduct(id uuid.UUID) (*model.Product, error)
	SearchProducts(query string) ([]model.Product, error)
	CreateProduct(product *model.Product) error
	UpdateProduct(id uuid.UUID, input *UpdateProductInput) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
	AttachImage(ctx context.Context, id uuid.UUID, filename, contentType string, body io.Reader) (string, error)
}

type catalogService struct {
	repo  repository.ProductRepository
	store storage.ObjectStore
}

func NewCatalogService(repo repository.ProductRepository, store storage.ObjectStore) CatalogService {
	return &catalogService{
		repo:  repo,
		store: store,
	}
}

func (s *catalogService) ListProducts(page, limit int, category string) (*ProductPage, error) {
	// Non-positive values fall back to the defaults instead of producing a
	// negative offset.
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	products, total, err := s.repo.List(repository.ListFilter{
		Page:     page,
		Limit:    limit,
		Category: category,
	})
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}

	return &ProductPage{
		Products: products,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + int64(limit) - 1) / int64(limit),
		},
	}, nil
}

func (s *catalogService) GetProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogService) SearchProducts(query string) ([]model.Product, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &ValidationError{Message: "Search query required"}
	}

	products, err := s.repo.Search(query, searchLimit)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

func (s *catalogService) CreateProduct(product *model.Product) error {
	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		return &ValidationError{Message: validator.Message(errs)}
	}

	// Server-assigned fields are never taken from the request body. The
	// timestamps must be zero so GORM stamps them with the current time.
	product.ID = uuid.Nil
	product.ImageURL = nil
	product.CreatedAt = time.Time{}
	product.UpdatedAt = time.Time{}
	product.DeletedAt = gorm.DeletedAt{}

	return s.repo.Create(product)
}

func (s *catalogService) UpdateProduct(id uuid.UUID, input *UpdateProductInput) (*model.Product, error) {
	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.Stock != nil {
		fields["stock"] = *input.Stock
	}

	product, err := s.repo.Update(id, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogService) DeleteProduct(id uuid.UUID) error {
	err := s.repo.SoftDelete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	return err
}

// AttachImage uploads the binary under a key scoped to the product, then
// points image_url at the uploaded object. The row update does not check that
// the product exists or is live.
func (s *catalogService) AttachImage(ctx context.Context, id uuid.UUID, filename, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("products/%s/%s-%s", id, uuid.New(), filename)

	url, err := s.store.Put(ctx, key, body, contentType)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetImageURL(id, url); err != nil {
		return "", err
	}
	return url, nil
}
