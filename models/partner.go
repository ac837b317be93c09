package models

// Partner is the business account operating this terminal. Branches
// arrive nested in the profile payload.
type Partner struct {
	ID           int64            `json:"partner_id"`
	UserID       int64            `json:"user_id"`
	BusinessName string           `json:"business_name"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone_number,omitempty"`
	Address      string           `json:"address,omitempty"`
	CategoryIDs  []int64          `json:"category_ids,omitempty"`
	Branches     []Branch         `json:"branches"`
	Terms        *TermsAcceptance `json:"terms"`
}

// TermsAcceptance records which terms version this partner's user has
// accepted. A nil value means no version was ever accepted.
type TermsAcceptance struct {
	Version    string `json:"version"`
	AcceptedAt string `json:"accepted_at,omitempty"`
}
