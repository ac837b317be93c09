package models

type Branch struct {
	ID          int64    `json:"branch_id"`
	PartnerID   int64    `json:"partner_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Image       string   `json:"image_url,omitempty"`
	Status      *Status  `json:"status"`
	Ratings     []Rating `json:"ratings,omitempty"`
}

type BranchCreate struct {
	PartnerID   int64   `json:"partner_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Image       string  `json:"image,omitempty"`
}

type BranchUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Image       *string  `json:"image,omitempty"`
	StatusID    *int64   `json:"status_id,omitempty"`
}
