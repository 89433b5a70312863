package repository

import (
	"go-stock-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindAllByOwner(ownerID uuid.UUID) ([]model.Category, error)
	FindByID(ownerID, id uuid.UUID) (*model.Category, error)
	Update(category *model.Category) error
	Delete(category *model.Category) error
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) FindAllByOwner(ownerID uuid.UUID) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Where("owner_id = ?", ownerID).Order("label").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(ownerID, id uuid.UUID) (*model.Category, error) {
	var category model.Category
	err := r.db.Where("owner_id = ? AND id = ?", ownerID, id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepo) Delete(category *model.Category) error {
	return r.db.Delete(category).Error
}
