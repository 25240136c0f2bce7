// Package pricing implements the money math behind estimates and invoices:
// per-line totals and the cascading overhead/profit/tax calculation.
package pricing

import (
	"math"
	"strconv"
	"strings"
)

// LineItem is a single quantity × unit-price entry on an estimate or invoice.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Rates holds the percentage rates applied on top of the line-item subtotal.
// Each rate is a percentage (15 means 15%), non-negative, with no upper bound.
type Rates struct {
	OverheadPct float64 `json:"overhead_pct"`
	ProfitPct   float64 `json:"profit_pct"`
	TaxPct      float64 `json:"tax_pct"`
}

// DefaultRates are the rates new estimates start with.
var DefaultRates = Rates{OverheadPct: 15, ProfitPct: 20, TaxPct: 0}

// Totals is the fully derived output of ComputeTotals. It is never stored;
// it is recomputed from scratch whenever the inputs change.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Overhead float64 `json:"overhead"`
	Profit   float64 `json:"profit"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// LineTotal returns quantity × unit price for one line item.
// Non-finite inputs are treated as 0.
func LineTotal(item LineItem) float64 {
	return finite(item.Quantity) * finite(item.UnitPrice)
}

// ComputeTotals runs the cascade in its fixed order:
//
//	subtotal = Σ qty × unit price
//	overhead = subtotal × overhead%
//	profit   = (subtotal + overhead) × profit%
//	tax      = (subtotal + overhead + profit) × tax%
//	total    = subtotal + overhead + profit + tax
//
// Profit compounds on cost-plus-overhead, not on the raw subtotal, and tax
// applies after both are folded in. That ordering is load-bearing for every
// document this package feeds.
//
// Intermediate values keep full float precision; round only what is shown.
func ComputeTotals(items []LineItem, rates Rates) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += LineTotal(item)
	}

	overhead := subtotal * finite(rates.OverheadPct) / 100
	withOverhead := subtotal + overhead
	profit := withOverhead * finite(rates.ProfitPct) / 100
	withProfit := withOverhead + profit
	tax := withProfit * finite(rates.TaxPct) / 100

	return Totals{
		Subtotal: subtotal,
		Overhead: overhead,
		Profit:   profit,
		Tax:      tax,
		Total:    withProfit + tax,
	}
}

// Round2 rounds to 2 decimal places for presentation. Totals fields are kept
// unrounded; callers round the values they display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CoerceAmount converts a loosely typed record field into a float64.
// Anything that is not a usable number comes back as 0; this function
// never reports an error.
func CoerceAmount(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(n), "$"))
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return finite(f)
	default:
		return 0
	}
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
