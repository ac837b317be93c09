package models

type Rating struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"user_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

// BranchRatings is the aggregate payload returned for a branch.
type BranchRatings struct {
	Ratings       []Rating `json:"ratings"`
	AverageRating float64  `json:"average_rating"`
}
