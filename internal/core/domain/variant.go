package domain

// Variant is a trim level of a car model. Name holds the parent model name.
type Variant struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required"`
	Variant string `json:"variant" validate:"required"`
	Details string `json:"details" validate:"required"`
	Image   string `json:"image"`
}
