package models

// Terms is the current terms-of-service document published by the
// backend. Acceptance is tracked per user against Version.
type Terms struct {
	ID      int64  `json:"id"`
	Version string `json:"version"`
	Content string `json:"content"`
}
