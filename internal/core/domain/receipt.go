package domain

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
)

// Receipt is the structured document handed to the document renderer for a
// confirmed booking.
type Receipt struct {
	CustomerName string     `json:"customerName"`
	Address      string     `json:"address"`
	Mobile       string     `json:"mobile"`
	SpareName    string     `json:"spareName"`
	CarName      string     `json:"carName"`
	CarMake      string     `json:"carMake"`
	Prices       PriceLines `json:"prices"`
	Warranty     string     `json:"warranty"`
}

// NewReceipt prices a booking and fills the receipt fields. Fails when the
// booking price does not parse as a decimal.
func NewReceipt(b *Booking) (*Receipt, error) {
	basePrice, err := strconv.ParseFloat(b.Price, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid booking price %q: %w", b.Price, err)
	}
	return &Receipt{
		CustomerName: b.CustomerName,
		Address:      b.Address,
		Mobile:       b.Mobile,
		SpareName:    b.SpareName,
		CarName:      b.CarName,
		CarMake:      b.CarMake,
		Prices:       PriceBreakdown(basePrice),
		Warranty:     "1 Year",
	}, nil
}

var receiptTemplate = template.Must(template.New("receipt").Parse(`<html>
  <body style="font-family: Arial, sans-serif; background-color: #f8f9fa; color: #333; padding: 20px;">
    <h1 style="text-align: center; color: #4CAF50;">Spare Gold</h1>
    <h2 style="text-align: center; color: #666;">Receipt</h2>
    <table style="width: 100%; border: 1px solid #ddd; border-collapse: collapse; margin-top: 20px;">
      <tr><td><strong>Customer Name:</strong></td><td>{{.CustomerName}}</td></tr>
      <tr><td><strong>Address:</strong></td><td>{{.Address}}</td></tr>
      <tr><td><strong>Mobile:</strong></td><td>{{.Mobile}}</td></tr>
      <tr><td><strong>Spare Name:</strong></td><td>{{.SpareName}}</td></tr>
      <tr><td><strong>Car Name:</strong></td><td>{{.CarName}}</td></tr>
      <tr><td><strong>Car Make:</strong></td><td>{{.CarMake}}</td></tr>
      <tr><td><strong>Price:</strong></td><td>&#8377;{{printf "%.2f" .Prices.Base}}</td></tr>
      <tr><td><strong>GST (9%):</strong></td><td>&#8377;{{printf "%.2f" .Prices.GST}}</td></tr>
      <tr><td><strong>CGST (4%):</strong></td><td>&#8377;{{printf "%.2f" .Prices.CGST}}</td></tr>
      <tr><td><strong>Total:</strong></td><td>&#8377;{{printf "%.2f" .Prices.Total}}</td></tr>
      <tr><td><strong>Warranty:</strong></td><td>{{.Warranty}}</td></tr>
    </table>
    <p style="margin-top: 20px; text-align: center; color: #999;">Thank you for booking with us! We hope to serve you again.</p>
    <footer style="text-align: center; margin-top: 20px; color: #ccc;">
      <p>Terms and Conditions: All parts come with a 1-year warranty. GST and CGST are applicable as per the government rules.</p>
    </footer>
  </body>
</html>
`))

// RenderHTML produces the printable document for the receipt.
func (r *Receipt) RenderHTML() (string, error) {
	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("render receipt: %w", err)
	}
	return buf.String(), nil
}
