package domain

// Category groups products for browsing. Slug is unique and URL-safe.
type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Slug        string  `json:"slug"`
}
