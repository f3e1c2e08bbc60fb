package entities

import "time"

// Motor is the free-form technical description of the motor received for repair.
// It belongs to exactly one budget.
type Motor struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Model         string    `json:"model"`
	Brand         string    `json:"brand"`
	CV            string    `json:"cv"`
	Voltage       string    `json:"voltage"`
	RPM           string    `json:"rpm"`
	Turns         string    `json:"turns"`
	Wires         string    `json:"wires"`
	Connection    string    `json:"connection"`
	OuterDiameter string    `json:"outer_diameter"`
	OuterLength   string    `json:"outer_length"`
	SerialNumber  string    `json:"serial_number"`
	Original      bool      `json:"original"`
	CreatedAt     time.Time `json:"created_at"`
}
