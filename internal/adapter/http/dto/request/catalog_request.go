package request

import (
	"rebobinagem/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type ClientRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Mobile  string `json:"mobile"`
	Notes   string `json:"notes"`
}

func (r ClientRequest) ToEntity(id string) entities.Client {
	return entities.Client{
		ID:      id,
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
		Mobile:  r.Mobile,
		Notes:   r.Notes,
	}
}

type PartRequest struct {
	Name  string          `json:"name" validate:"required"`
	Type  string          `json:"type"`
	Price decimal.Decimal `json:"price" validate:"gt=0"`
	Unit  string          `json:"unit"`
	Notes string          `json:"notes"`
}

func (r PartRequest) ToEntity(id string) entities.Part {
	return entities.Part{
		ID:    id,
		Name:  r.Name,
		Type:  r.Type,
		Price: r.Price,
		Unit:  r.Unit,
		Notes: r.Notes,
	}
}
