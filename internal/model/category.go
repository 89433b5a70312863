package model

import (
	"github.com/google/uuid"
)

// Category is a free-text label a user attaches to products.
type Category struct {
	BaseModel
	OwnerID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	Owner   *User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Label   string    `gorm:"type:varchar(50);not null" json:"label"`
}

type CategoryRequest struct {
	Label string `json:"label" validate:"required,max=50"`
}

type CategoryResponse struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
}

func (c *Category) ToResponse() CategoryResponse {
	return CategoryResponse{ID: c.ID, Label: c.Label}
}
