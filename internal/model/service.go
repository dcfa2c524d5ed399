package model

// Service is a professional service offered by the owner.
type Service struct {
	ID                  int     `json:"id"`
	Title               string  `json:"title"`
	ShortDescription    string  `json:"short_description"`
	DetailedDescription *string `json:"detailed_description"`
	IconKey             *string `json:"icon_key"`
	Highlight           bool    `json:"highlight"`
	OrderIndex          int     `json:"order_index"`
}
