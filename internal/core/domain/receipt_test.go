package domain

import (
	"strings"
	"testing"
)

func testBooking() *Booking {
	return &Booking{
		ID:           "b-1",
		CustomerName: "A. Kumar",
		Address:      "12 MG Road, Pune",
		Mobile:       "9876543210",
		SpareName:    "Brake Pad Set",
		CarName:      "Model S",
		CarMake:      "Tesla",
		Price:        "100",
	}
}

func TestNewReceipt(t *testing.T) {
	receipt, err := NewReceipt(testBooking())
	if err != nil {
		t.Fatalf("NewReceipt() error = %v", err)
	}

	if receipt.CustomerName != "A. Kumar" {
		t.Errorf("CustomerName = %q, want %q", receipt.CustomerName, "A. Kumar")
	}
	if receipt.Prices.Total != 113.00 {
		t.Errorf("Total = %v, want 113.00", receipt.Prices.Total)
	}
	if receipt.Warranty != "1 Year" {
		t.Errorf("Warranty = %q, want %q", receipt.Warranty, "1 Year")
	}
}

func TestNewReceiptInvalidPrice(t *testing.T) {
	booking := testBooking()
	booking.Price = "not-a-number"

	if _, err := NewReceipt(booking); err == nil {
		t.Fatal("NewReceipt() expected error for non-decimal price")
	}
}

func TestReceiptRenderHTML(t *testing.T) {
	receipt, err := NewReceipt(testBooking())
	if err != nil {
		t.Fatalf("NewReceipt() error = %v", err)
	}

	html, err := receipt.RenderHTML()
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}

	for _, want := range []string{
		"Spare Gold",
		"A. Kumar",
		"Brake Pad Set",
		"&#8377;100.00",
		"&#8377;9.00",
		"&#8377;4.00",
		"&#8377;113.00",
		"GST (9%)",
		"CGST (4%)",
		"1 Year",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("RenderHTML() missing %q", want)
		}
	}
}

func TestReceiptRenderHTMLEscapesInput(t *testing.T) {
	booking := testBooking()
	booking.CustomerName = `<script>alert("x")</script>`

	receipt, err := NewReceipt(booking)
	if err != nil {
		t.Fatalf("NewReceipt() error = %v", err)
	}

	html, err := receipt.RenderHTML()
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Error("RenderHTML() did not escape customer name")
	}
}
