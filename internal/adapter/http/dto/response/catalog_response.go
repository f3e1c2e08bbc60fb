package response

import (
	"time"

	"rebobinagem/internal/domain/entities"
)

type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Mobile    string    `json:"mobile"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		Mobile:    c.Mobile,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}

func FromClients(list []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromClient(c))
	}
	return out
}

type PartResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Price     string    `json:"price"`
	Unit      string    `json:"unit"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func FromPart(p entities.Part) PartResponse {
	return PartResponse{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		Price:     p.Price.StringFixed(2),
		Unit:      p.Unit,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}
}

func FromParts(list []entities.Part) []PartResponse {
	out := make([]PartResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPart(p))
	}
	return out
}
