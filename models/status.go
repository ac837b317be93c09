package models

// Status is one entry of the server-defined status vocabulary. The
// terminal never hardcodes status ids; it resolves them by name at use
// time so the vocabulary stays owned by the backend.
type Status struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
