package domain

// CarModel is one catalog entry under a company. Year is kept as a string
// because the catalog forms submit it as free text.
type CarModel struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required"`
	Company string `json:"company" validate:"required"`
	Year    string `json:"year" validate:"required"`
	Details string `json:"details" validate:"required"`
	Image   string `json:"image"` // hosted URL or a local device path before upload
}
