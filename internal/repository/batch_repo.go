package repository

import (
	"go-stock-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BatchRepository interface {
	Create(batch *model.Batch) error
	FindAllByProduct(ownerID, productID uuid.UUID) ([]model.Batch, error)
	FindByID(ownerID, productID, id uuid.UUID) (*model.Batch, error)
	Update(batch *model.Batch) error
	Delete(batch *model.Batch) error
}

type batchRepo struct {
	db *gorm.DB
}

func NewBatchRepo(db *gorm.DB) BatchRepository {
	return &batchRepo{db}
}

func (r *batchRepo) Create(batch *model.Batch) error {
	return r.db.Create(batch).Error
}

func (r *batchRepo) FindAllByProduct(ownerID, productID uuid.UUID) ([]model.Batch, error) {
	var batches []model.Batch
	err := r.db.
		Preload("Provider").
		Where("owner_id = ? AND product_id = ?", ownerID, productID).
		Order(`"limit", current`).
		Find(&batches).Error
	return batches, err
}

func (r *batchRepo) FindByID(ownerID, productID, id uuid.UUID) (*model.Batch, error) {
	var batch model.Batch
	err := r.db.
		Preload("Provider").
		Where("owner_id = ? AND product_id = ? AND id = ?", ownerID, productID, id).
		First(&batch).Error
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *batchRepo) Update(batch *model.Batch) error {
	// Associations stay out of the write: a preloaded Provider must not win
	// over an updated ProviderID.
	return r.db.Omit(clause.Associations).Save(batch).Error
}

func (r *batchRepo) Delete(batch *model.Batch) error {
	return r.db.Delete(batch).Error
}
