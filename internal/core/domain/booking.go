package domain

// swagger:model domain.Booking
type Booking struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName" validate:"required"`
	Address      string `json:"address" validate:"required"`
	Mobile       string `json:"mobile" validate:"required"`
	SpareName    string `json:"spareName" validate:"required"`
	CarName      string `json:"carName" validate:"required"`
	CarMake      string `json:"carMake" validate:"required"`
	Price        string `json:"price" validate:"required"`
}
