package pricing

import (
	"math"
	"testing"
)

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name   string
		item   LineItem
		expect float64
	}{
		{"basic multiplication", LineItem{Quantity: 10, UnitPrice: 50}, 500},
		{"zero quantity", LineItem{Quantity: 0, UnitPrice: 100}, 0},
		{"zero price", LineItem{Quantity: 5, UnitPrice: 0}, 0},
		{"decimal values", LineItem{Quantity: 2.5, UnitPrice: 100.50}, 251.25},
		{"NaN quantity coerces to zero", LineItem{Quantity: math.NaN(), UnitPrice: 100}, 0},
		{"infinite price coerces to zero", LineItem{Quantity: 3, UnitPrice: math.Inf(1)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineTotal(tt.item)
			if got != tt.expect {
				t.Errorf("LineTotal(%+v) = %v, want %v", tt.item, got, tt.expect)
			}
		})
	}
}

func TestComputeTotals_Cascade(t *testing.T) {
	// 1000 subtotal at 10% overhead and 10% profit: profit must compound on
	// subtotal + overhead (1100), not on the raw subtotal.
	items := []LineItem{
		{Description: "Water extraction", Quantity: 10, UnitPrice: 60},
		{Description: "Dehumidifier rental", Quantity: 8, UnitPrice: 50},
	}
	totals := ComputeTotals(items, Rates{OverheadPct: 10, ProfitPct: 10, TaxPct: 0})

	if totals.Subtotal != 1000 {
		t.Errorf("Subtotal = %v, want 1000", totals.Subtotal)
	}
	if totals.Overhead != 100 {
		t.Errorf("Overhead = %v, want 100", totals.Overhead)
	}
	if totals.Profit != 110 {
		t.Errorf("Profit = %v, want 110 (10%% of 1100)", totals.Profit)
	}
	if totals.Total != 1210 {
		t.Errorf("Total = %v, want 1210", totals.Total)
	}
}

func TestComputeTotals_TaxAfterOverheadAndProfit(t *testing.T) {
	items := []LineItem{{Quantity: 1, UnitPrice: 1000}}
	totals := ComputeTotals(items, Rates{OverheadPct: 10, ProfitPct: 10, TaxPct: 10})

	// Tax applies on 1210, not 1000.
	if totals.Tax != 121 {
		t.Errorf("Tax = %v, want 121", totals.Tax)
	}
	if totals.Total != 1331 {
		t.Errorf("Total = %v, want 1331", totals.Total)
	}
}

func TestComputeTotals_ZeroTaxIsExact(t *testing.T) {
	items := []LineItem{
		{Quantity: 3, UnitPrice: 123.45},
		{Quantity: 7, UnitPrice: 0.99},
	}
	totals := ComputeTotals(items, Rates{OverheadPct: 15, ProfitPct: 20, TaxPct: 0})

	if totals.Tax != 0 {
		t.Errorf("Tax = %v, want 0", totals.Tax)
	}
	if totals.Total != totals.Subtotal+totals.Overhead+totals.Profit {
		t.Errorf("Total = %v, want exact sum %v",
			totals.Total, totals.Subtotal+totals.Overhead+totals.Profit)
	}
}

func TestComputeTotals_OrderIndependent(t *testing.T) {
	a := []LineItem{
		{Quantity: 2, UnitPrice: 19.99},
		{Quantity: 1, UnitPrice: 350},
		{Quantity: 14, UnitPrice: 3.25},
	}
	b := []LineItem{a[2], a[0], a[1]}

	ta := ComputeTotals(a, DefaultRates)
	tb := ComputeTotals(b, DefaultRates)

	if math.Abs(ta.Total-tb.Total) > 1e-9 {
		t.Errorf("totals differ across item order: %v vs %v", ta.Total, tb.Total)
	}
}

func TestComputeTotals_Deterministic(t *testing.T) {
	items := []LineItem{{Quantity: 3.3, UnitPrice: 9.99}}
	first := ComputeTotals(items, DefaultRates)
	for i := 0; i < 5; i++ {
		if got := ComputeTotals(items, DefaultRates); got != first {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := ComputeTotals(nil, DefaultRates)
	if totals != (Totals{}) {
		t.Errorf("ComputeTotals(nil) = %+v, want all zeros", totals)
	}
}

func TestComputeTotals_InvalidRatesCoerce(t *testing.T) {
	items := []LineItem{{Quantity: 1, UnitPrice: 100}}
	totals := ComputeTotals(items, Rates{OverheadPct: math.NaN(), ProfitPct: 20, TaxPct: 0})

	if totals.Overhead != 0 {
		t.Errorf("Overhead = %v, want 0 for NaN rate", totals.Overhead)
	}
	if totals.Profit != 20 {
		t.Errorf("Profit = %v, want 20", totals.Profit)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect float64
	}{
		{"already rounded", 10.50, 10.50},
		{"round down", 10.554, 10.55},
		{"round up", 10.555, 10.56},
		{"negative", -1.005, -1.0},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round2(tt.input); got != tt.expect {
				t.Errorf("Round2(%v) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		expect float64
	}{
		{"float64", 12.5, 12.5},
		{"int", 42, 42.0},
		{"int64", int64(7), 7.0},
		{"numeric string", "19.99", 19.99},
		{"dollar string", "$1200.50", 1200.50},
		{"padded string", "  45 ", 45.0},
		{"garbage string", "n/a", 0},
		{"empty string", "", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
		{"NaN", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoerceAmount(tt.input); got != tt.expect {
				t.Errorf("CoerceAmount(%v) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}
