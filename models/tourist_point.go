package models

type TouristPoint struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Images      []struct {
		ID  int64  `json:"id"`
		URL string `json:"image_path"`
	} `json:"images,omitempty"`
}
