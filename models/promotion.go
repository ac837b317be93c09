package models

// Promotion 代表系統中的促銷活動
// Promotion represents a partner promotion with a validity window,
// optional inventory and category tags.
type Promotion struct {
	ID                 int64            `json:"promotion_id"`
	PartnerID          int64            `json:"partner_id"`
	BranchID           int64            `json:"branch_id"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	DiscountPercentage float64          `json:"discount_percentage"`
	AvailableQuantity  *int             `json:"available_quantity"`
	StartDate          Date             `json:"start_date"`
	ExpirationDate     Date             `json:"expiration_date"`
	Status             *Status          `json:"status"`
	CategoryIDs        []int64          `json:"category_ids"`
	Images             []PromotionImage `json:"images"`
}

type PromotionImage struct {
	ID       int64  `json:"image_id"`
	Filename string `json:"filename"`
	Data     string `json:"data,omitempty"`
	URL      string `json:"image_path,omitempty"`
}

// PromotionCreate is the request body for creating a promotion.
type PromotionCreate struct {
	PartnerID          int64            `json:"partner_id"`
	BranchID           int64            `json:"branch_id"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	DiscountPercentage float64          `json:"discount_percentage"`
	AvailableQuantity  *int             `json:"available_quantity"`
	StartDate          Date             `json:"start_date"`
	ExpirationDate     Date             `json:"expiration_date"`
	CategoryIDs        []int64          `json:"category_ids"`
	Images             []PromotionImage `json:"images"`
}

// PromotionUpdate carries only the fields being changed; nil fields are
// left untouched by the backend.
type PromotionUpdate struct {
	Title              *string          `json:"title,omitempty"`
	Description        *string          `json:"description,omitempty"`
	DiscountPercentage *float64         `json:"discount_percentage,omitempty"`
	AvailableQuantity  *int             `json:"available_quantity,omitempty"`
	StartDate          *Date            `json:"start_date,omitempty"`
	ExpirationDate     *Date            `json:"expiration_date,omitempty"`
	StatusID           *int64           `json:"status_id,omitempty"`
	CategoryIDs        []int64          `json:"category_ids,omitempty"`
	Images             []PromotionImage `json:"images,omitempty"`
}
