package domain

import "testing"

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name string
		base float64
		want float64
	}{
		{name: "hundred", base: 100, want: 113.00},
		{name: "zero", base: 0, want: 0},
		{name: "rounds half up", base: 99.99, want: 112.99},
		{name: "small price", base: 0.01, want: 0.01},
		{name: "typical part", base: 4500, want: 5085.00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeTotal(tt.base); got != tt.want {
				t.Errorf("ComputeTotal(%v) = %v, want %v", tt.base, got, tt.want)
			}
		})
	}
}

func TestPriceBreakdown(t *testing.T) {
	lines := PriceBreakdown(100)

	if lines.Base != 100.00 {
		t.Errorf("Base = %v, want 100.00", lines.Base)
	}
	if lines.GST != 9.00 {
		t.Errorf("GST = %v, want 9.00", lines.GST)
	}
	if lines.CGST != 4.00 {
		t.Errorf("CGST = %v, want 4.00", lines.CGST)
	}
	if lines.Total != 113.00 {
		t.Errorf("Total = %v, want 113.00", lines.Total)
	}
}

func TestPriceBreakdownLinesRounded(t *testing.T) {
	// Each line rounds independently; the total is computed from the raw
	// base, not from the rounded lines.
	lines := PriceBreakdown(33.33)

	if lines.GST != 3.00 {
		t.Errorf("GST = %v, want 3.00", lines.GST)
	}
	if lines.CGST != 1.33 {
		t.Errorf("CGST = %v, want 1.33", lines.CGST)
	}
	if lines.Total != 37.66 {
		t.Errorf("Total = %v, want 37.66", lines.Total)
	}
}
