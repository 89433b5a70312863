package model

import (
	"github.com/google/uuid"
)

// Batch is a stock lot of a product purchased from a provider. A batch is in
// stock while its current quantity is above zero.
type Batch struct {
	BaseModel
	OwnerID    uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	Owner      *User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	ProductID  uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	Product    *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	ProviderID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	Provider   *Provider `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE" json:"provider,omitempty"`
	Initial    float64   `gorm:"default:0" json:"initial"`
	Current    float64   `gorm:"default:0" json:"current"`
	Price      float64   `gorm:"default:0" json:"price"`
	Purchase   Date      `json:"purchase"`
	Limit      Date      `json:"limit"`
}

// BatchRequest binds create and update bodies. The provider arrives as an id
// and is expanded to its label in every response.
type BatchRequest struct {
	Initial  float64   `json:"initial"`
	Current  float64   `json:"current"`
	Price    float64   `json:"price"`
	Purchase Date      `json:"purchase" validate:"required"`
	Limit    Date      `json:"limit" validate:"required"`
	Provider uuid.UUID `json:"provider" validate:"required"`
}

type BatchResponse struct {
	ID       uuid.UUID `json:"id"`
	Initial  float64   `json:"initial"`
	Current  float64   `json:"current"`
	Price    float64   `json:"price"`
	Purchase Date      `json:"purchase"`
	Limit    Date      `json:"limit"`
	Provider string    `json:"provider"`
}

// ToResponse expects the Provider relation to be preloaded.
func (b *Batch) ToResponse() BatchResponse {
	providerLabel := ""
	if b.Provider != nil {
		providerLabel = b.Provider.Label
	}
	return BatchResponse{
		ID:       b.ID,
		Initial:  b.Initial,
		Current:  b.Current,
		Price:    b.Price,
		Purchase: b.Purchase,
		Limit:    b.Limit,
		Provider: providerLabel,
	}
}
