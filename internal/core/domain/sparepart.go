package domain

// SparePart is a bookable part. Price is a decimal carried as a string,
// parsed only when a receipt is priced. Image may be empty when the seller
// skipped the upload.
type SparePart struct {
	ID        string `json:"id"`
	CarName   string `json:"carName" validate:"required"`
	Brand     string `json:"brand" validate:"required"`
	CarMake   string `json:"carMake" validate:"required"`
	SpareName string `json:"spareName" validate:"required"`
	Year      string `json:"year" validate:"required"`
	Price     string `json:"price" validate:"required"`
	Image     string `json:"image,omitempty"`
}
