package models

import "time"

// ConsumptionRecord is one recorded redemption of a promotion by a
// scanned customer. It is created exactly once per successful
// submission; the only later mutation is a status flip to "deleted".
type ConsumptionRecord struct {
	ID               int64     `json:"id"`
	PromotionID      int64     `json:"promotion_id"`
	UserID           int64     `json:"user_id"`
	QuantityConsumed int       `json:"quantity_consumed"`
	AmountConsumed   float64   `json:"amount_consumed"`
	Description      string    `json:"description"`
	ConsumptionDate  time.Time `json:"consumption_date"`
	Status           *Status   `json:"status"`
}

// ConsumptionCreate is the request body for recording a redemption.
type ConsumptionCreate struct {
	UserID           int64     `json:"user_id"`
	PromotionID      int64     `json:"promotion_id"`
	StatusID         int64     `json:"status_id"`
	QuantityConsumed int       `json:"quantity_consumed"`
	AmountConsumed   float64   `json:"amount_consumed"`
	Description      string    `json:"description"`
	ConsumptionDate  time.Time `json:"consumption_date"`
}

// ConsumptionStatusUpdate flips a record's status; used for soft deletes.
type ConsumptionStatusUpdate struct {
	StatusID int64 `json:"status_id"`
}
