package model

import (
	"github.com/google/uuid"
)

// Provider is a supplier contact record; batches reference the provider they
// were purchased from.
type Provider struct {
	BaseModel
	OwnerID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	Owner   *User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Label   string    `gorm:"type:varchar(50);not null" json:"label"`
	Address string    `gorm:"type:text" json:"address"`
	City    string    `gorm:"type:varchar(100)" json:"city"`
	Zipcode string    `gorm:"type:varchar(10)" json:"zipcode"`
	Phone   string    `gorm:"type:varchar(10)" json:"phone"`
}

type ProviderRequest struct {
	Label   string `json:"label" validate:"required,max=50"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required,max=100"`
	Zipcode string `json:"zipcode" validate:"required,max=10"`
	Phone   string `json:"phone" validate:"required,max=10"`
}

// ProviderResponse is the full shape used by every endpoint except the list.
type ProviderResponse struct {
	ID      uuid.UUID `json:"id"`
	Label   string    `json:"label"`
	Address string    `json:"address"`
	City    string    `json:"city"`
	Zipcode string    `json:"zipcode"`
	Phone   string    `json:"phone"`
}

// ProviderListItem is the minimal shape returned by the list endpoint.
type ProviderListItem struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
	City  string    `json:"city"`
}

func (p *Provider) ToResponse() ProviderResponse {
	return ProviderResponse{
		ID:      p.ID,
		Label:   p.Label,
		Address: p.Address,
		City:    p.City,
		Zipcode: p.Zipcode,
		Phone:   p.Phone,
	}
}

func (p *Provider) ToListItem() ProviderListItem {
	return ProviderListItem{ID: p.ID, Label: p.Label, City: p.City}
}
