package model

// Language is a spoken language and proficiency level.
type Language struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Level      string `json:"level"`
	OrderIndex int    `json:"order_index"`
}
