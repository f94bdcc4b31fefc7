package domain

// swagger:model domain.Company
type Company struct {
	ID    string `json:"id"`
	Name  string `json:"name" validate:"required"`
	Image string `json:"image" validate:"required"` // hosted URL after upload
}
