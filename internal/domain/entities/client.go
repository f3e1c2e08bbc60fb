package entities

import "time"

// Client is the shop customer a budget is issued to.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Mobile    string    `json:"mobile"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
