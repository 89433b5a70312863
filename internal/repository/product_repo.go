package repository

import (
	"go-stock-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(product *model.Product) error
	// FindAllByOwner preloads categories, batches and batch providers for the
	// nested list shape.
	FindAllByOwner(ownerID uuid.UUID) ([]model.Product, error)
	// FindByID is the light owner-scoped lookup without relations.
	FindByID(ownerID, id uuid.UUID) (*model.Product, error)
	// FindByIDWithBatches preloads everything needed for the detail shape.
	FindByIDWithBatches(ownerID, id uuid.UUID) (*model.Product, error)
	Update(product *model.Product) error
	// DeleteWithBatches removes the product and all of its batches in one
	// transaction.
	DeleteWithBatches(product *model.Product) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

// batchOrdering sorts nested batches by expiry date, then current quantity.
// "limit" needs quoting, it is a reserved word.
func batchOrdering(db *gorm.DB) *gorm.DB {
	return db.Order(`"limit", current`)
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAllByOwner(ownerID uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.
		Preload("Category").
		Preload("Batches", batchOrdering).
		Preload("Batches.Provider").
		Where("owner_id = ?", ownerID).
		Order("label").
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(ownerID, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Where("owner_id = ? AND id = ?", ownerID, id).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByIDWithBatches(ownerID, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.
		Preload("Category").
		Preload("Batches", batchOrdering).
		Preload("Batches.Provider").
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Omit(clause.Associations).Save(product).Error
}

func (r *productRepo) DeleteWithBatches(product *model.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&model.Batch{}).Error; err != nil {
			return err
		}
		return tx.Delete(product).Error
	})
}
