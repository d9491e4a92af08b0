package repository

import (
	"strings"
	"time"

	"go-product-catalog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListFilter carries the pagination window and the optional exact-match
// category filter for List.
type ListFilter struct {
	Page     int
	Limit    int
	Category string
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindByID(id uuid.UUID) (*model.Product, error)
	List(filter ListFilter) ([]model.Product, int64, error)
	Search(query string, limit int) ([]model.Product, error)
	Update(id uuid.UUID, fields map[string]interface{}) (*model.Product, error)
	SoftDelete(id uuid.UUID) error
	SetImageURL(id uuid.UUID, url string) error
	Ping() error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// filtered builds a fresh query chain so count and fetch run as two
// independent statements, mirroring the count+fetch pair of the list route.
func (r *productRepo) filtered(category string) *gorm.DB {
	q := r.db.Model(&model.Product{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	return q
}

func (r *productRepo) List(filter ListFilter) ([]model.Product, int64, error) {
	var total int64
	if err := r.filtered(filter.Category).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit

	var products []model.Product
	err := r.filtered(filter.Category).
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepo) Search(query string, limit int) ([]model.Product, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var products []model.Product
	err := r.db.
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

// Update applies a field-level coalesce merge: only the keys present in
// fields are written, everything else keeps its prior value. updated_at is
// refreshed even when fields is empty.
func (r *productRepo) Update(id uuid.UUID, fields map[string]interface{}) (*model.Product, error) {
	fields["updated_at"] = time.Now()

	res := r.db.Model(&model.Product{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(id)
}

func (r *productRepo) SoftDelete(id uuid.UUID) error {
	res := r.db.Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetImageURL intentionally skips the existence and deleted_at checks: the
// attachment flow updates whatever row matches and reports success either
// way, matching the rest of the attachment contract.
func (r *productRepo) SetImageURL(id uuid.UUID, url string) error {
	return r.db.Unscoped().Model(&model.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"image_url":  url,
		"updated_at": time.Now(),
	}).Error
}

func (r *productRepo) Ping() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
