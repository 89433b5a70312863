package model

import (
	"github.com/google/uuid"
)

// Product is an owned item linked to one category and zero or more batches.
type Product struct {
	BaseModel
	OwnerID    uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	Owner      *User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	CategoryID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty"`
	Label      string    `gorm:"type:varchar(50);not null" json:"label"`
	Unit       string    `gorm:"type:varchar(10)" json:"unit"`
	Icon       *string   `gorm:"type:text" json:"icon"`

	Batches []Batch `gorm:"foreignKey:ProductID" json:"batches,omitempty"`
}

// ProductRequest binds create and update bodies. The category arrives as an
// id and is expanded to its label in every response.
type ProductRequest struct {
	Label    string    `json:"label" validate:"required,max=50"`
	Unit     string    `json:"unit" validate:"required,max=10"`
	Category uuid.UUID `json:"category" validate:"required"`
	Icon     *string   `json:"icon"`
}

// ProductResponse is the nested shape with batches included.
type ProductResponse struct {
	ID       uuid.UUID       `json:"id"`
	Label    string          `json:"label"`
	Unit     string          `json:"unit"`
	Category string          `json:"category"`
	Icon     *string         `json:"icon"`
	Batches  []BatchResponse `json:"batches"`
}

// ProductSummary is the flat shape returned by create and update.
type ProductSummary struct {
	ID       uuid.UUID `json:"id"`
	Label    string    `json:"label"`
	Unit     string    `json:"unit"`
	Category string    `json:"category"`
	Icon     *string   `json:"icon"`
}

func (p *Product) categoryLabel() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Label
}

// ToResponse shapes the product with every preloaded batch included.
func (p *Product) ToResponse() ProductResponse {
	batches := make([]BatchResponse, 0, len(p.Batches))
	for i := range p.Batches {
		batches = append(batches, p.Batches[i].ToResponse())
	}
	return ProductResponse{
		ID:       p.ID,
		Label:    p.Label,
		Unit:     p.Unit,
		Category: p.categoryLabel(),
		Icon:     p.Icon,
		Batches:  batches,
	}
}

// ToListResponse shapes the product for the list view, keeping only batches
// still in stock (current quantity > 0).
func (p *Product) ToListResponse() ProductResponse {
	resp := p.ToResponse()
	inStock := make([]BatchResponse, 0, len(resp.Batches))
	for _, b := range resp.Batches {
		if b.Current > 0 {
			inStock = append(inStock, b)
		}
	}
	resp.Batches = inStock
	return resp
}

func (p *Product) ToSummary() ProductSummary {
	return ProductSummary{
		ID:       p.ID,
		Label:    p.Label,
		Unit:     p.Unit,
		Category: p.categoryLabel(),
		Icon:     p.Icon,
	}
}
