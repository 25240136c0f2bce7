// Package testhelpers provides shared fixtures for exercising the browse,
// export, and estimate paths: canned backend rows and a fake REST server
// that serves them.
package testhelpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"restodesk/models"
)

// NewBackend starts a fake backend that answers each configured path with
// the JSON encoding of its value. Unknown paths get a 404. The server is
// shut down automatically when the test finishes.
func NewBackend(t *testing.T, routes map[string]any) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Errorf("encode %s: %v", r.URL.Path, err)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// SampleClients returns a small client list with a comma-bearing name for
// CSV quoting checks.
func SampleClients() []models.Client {
	return []models.Client{
		{ID: 1, ClientNumber: "CL-001", Name: "Anderson Residence", City: "Tacoma", Status: "active"},
		{ID: 2, ClientNumber: "CL-002", Name: "Smith, John", City: "Seattle", Status: "active"},
		{ID: 3, ClientNumber: "CL-003", Name: "Baker Office Park", Company: "Baker Properties LLC", City: "Tacoma", Status: "inactive"},
	}
}

// SampleWorkOrders returns work orders covering the filter and null-date
// cases: one in progress with a schedule, one completed, one unscheduled.
func SampleWorkOrders() []models.WorkOrder {
	scheduled := "2025-03-01"
	return []models.WorkOrder{
		{ID: 1, WorkOrderNumber: "WO-001", Title: "Basement dry-out", ClientName: "Anderson Residence",
			Priority: "high", Status: "in_progress", ScheduledDate: &scheduled},
		{ID: 2, WorkOrderNumber: "WO-002", Title: "Roof tarp", ClientName: "Baker Office Park",
			Priority: "low", Status: "completed"},
		{ID: 3, WorkOrderNumber: "WO-003", Title: "Crawlspace inspection", ClientName: "Smith, John",
			Priority: "medium", Status: "pending"},
	}
}

// SamplePayments returns payments against two invoices so invoice-scoped
// fetches have something to narrow to.
func SamplePayments() []models.Payment {
	return []models.Payment{
		{ID: 1, PaymentNumber: "PMT-001", InvoiceID: 7, Amount: 500, PaymentDate: "2025-03-10",
			PaymentMethod: "check", ReferenceNumber: "4482"},
		{ID: 2, PaymentNumber: "PMT-002", InvoiceID: 7, Amount: 1250.75, PaymentDate: "2025-03-28",
			PaymentMethod: "insurance_direct", ReferenceNumber: "CLM-90210"},
		{ID: 3, PaymentNumber: "PMT-003", InvoiceID: 9, Amount: 300, PaymentDate: "2025-04-02",
			PaymentMethod: "cash"},
	}
}

// SampleEstimateDetail returns one estimate with embedded line items whose
// subtotal is exactly 1010.
func SampleEstimateDetail() models.EstimateDetail {
	validUntil := "2025-04-01"
	return models.EstimateDetail{
		Estimate: models.Estimate{
			ID:             14,
			EstimateNumber: "EST-2025-014",
			ClientName:     "Anderson Residence",
			Title:          "Basement water damage mitigation",
			OverheadRate:   15,
			ProfitRate:     20,
			TaxRate:        0,
			Status:         "sent",
			ValidUntil:     &validUntil,
			CreatedAt:      "2025-03-02 08:15:00",
		},
		LineItems: []models.EstimateLineItem{
			{ID: 1, EstimateID: 14, ItemName: "Water extraction", Quantity: 4, UnitPrice: 125},
			{ID: 2, EstimateID: 14, ItemName: "Dehumidifier rental (daily)", Quantity: 6, UnitPrice: 85},
		},
	}
}

// AssertContains checks that output contains every fragment.
func AssertContains(t *testing.T, output string, fragments ...string) {
	t.Helper()
	for _, frag := range fragments {
		if !strings.Contains(output, frag) {
			t.Errorf("expected output to contain %q, but it was not found\noutput (first 500 chars): %s",
				frag, truncate(output, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
