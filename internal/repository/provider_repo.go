package repository

import (
	"go-stock-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProviderRepository interface {
	Create(provider *model.Provider) error
	FindAllByOwner(ownerID uuid.UUID) ([]model.Provider, error)
	FindByID(ownerID, id uuid.UUID) (*model.Provider, error)
	Update(provider *model.Provider) error
	Delete(provider *model.Provider) error
}

type providerRepo struct {
	db *gorm.DB
}

func NewProviderRepo(db *gorm.DB) ProviderRepository {
	return &providerRepo{db}
}

func (r *providerRepo) Create(provider *model.Provider) error {
	return r.db.Create(provider).Error
}

func (r *providerRepo) FindAllByOwner(ownerID uuid.UUID) ([]model.Provider, error) {
	var providers []model.Provider
	err := r.db.Where("owner_id = ?", ownerID).Order("label, city").Find(&providers).Error
	return providers, err
}

func (r *providerRepo) FindByID(ownerID, id uuid.UUID) (*model.Provider, error) {
	var provider model.Provider
	err := r.db.Where("owner_id = ? AND id = ?", ownerID, id).First(&provider).Error
	if err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *providerRepo) Update(provider *model.Provider) error {
	return r.db.Save(provider).Error
}

func (r *providerRepo) Delete(provider *model.Provider) error {
	return r.db.Delete(provider).Error
}
