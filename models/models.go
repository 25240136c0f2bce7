// Package models defines one typed row per REST resource the backend
// serves. Field names and JSON tags follow the backend's schema; optional
// fields that the views treat as "may be missing" are pointers so the
// browser can sort them last.
package models

import "restodesk/pricing"

// Client is a property owner or business the company works for.
type Client struct {
	ID               int64  `json:"id"`
	ClientNumber     string `json:"client_number"`
	Name             string `json:"name"`
	Company          string `json:"company"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Mobile           string `json:"mobile"`
	AddressLine1     string `json:"address_line1"`
	AddressLine2     string `json:"address_line2"`
	City             string `json:"city"`
	State            string `json:"state"`
	Zip              string `json:"zip"`
	InsuranceCompany string `json:"insurance_company"`
	ClaimNumber      string `json:"claim_number"`
	PolicyNumber     string `json:"policy_number"`
	Notes            string `json:"notes"`
	Status           string `json:"status"`
}

// Employee is a field technician or office staff member.
type Employee struct {
	ID             int64  `json:"id"`
	EmployeeNumber string `json:"employee_number"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Position       string `json:"position"`
	Status         string `json:"status"`
}

// WorkOrder is a scheduled job for a client. ClientName and EmployeeName are
// populated by the backend's list endpoints from their joins.
type WorkOrder struct {
	ID              int64   `json:"id"`
	WorkOrderNumber string  `json:"work_order_number"`
	ClientID        int64   `json:"client_id"`
	ClientName      string  `json:"client_name,omitempty"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	Priority        string  `json:"priority"`
	Status          string  `json:"status"`
	ScheduledDate   *string `json:"scheduled_date"`
	CompletionDate  *string `json:"completion_date"`
	AssignedTo      int64   `json:"assigned_to"`
	EmployeeName    string  `json:"employee_name,omitempty"`
	EstimatedHours  float64 `json:"estimated_hours"`
	ActualHours     float64 `json:"actual_hours"`
	Notes           string  `json:"notes"`
}

// Estimate is a priced scope of work offered to a client. The stored
// subtotal/total fields mirror what the backend persisted; the live numbers
// are always recomputed from the line items with pricing.ComputeTotals.
type Estimate struct {
	ID             int64   `json:"id"`
	EstimateNumber string  `json:"estimate_number"`
	ClientID       int64   `json:"client_id"`
	ClientName     string  `json:"client_name,omitempty"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	OverheadRate   float64 `json:"overhead_rate"`
	ProfitRate     float64 `json:"profit_rate"`
	TaxRate        float64 `json:"tax_rate"`
	Subtotal       float64 `json:"subtotal"`
	TaxAmount      float64 `json:"tax_amount"`
	TotalAmount    float64 `json:"total_amount"`
	Status         string  `json:"status"`
	ValidUntil     *string `json:"valid_until"`
	Notes          string  `json:"notes"`
	Terms          string  `json:"terms"`
	CreatedAt      string  `json:"created_at"`
}

// Rates bundles the estimate's percentage rates for the totals cascade.
func (e Estimate) Rates() pricing.Rates {
	return pricing.Rates{
		OverheadPct: e.OverheadRate,
		ProfitPct:   e.ProfitRate,
		TaxPct:      e.TaxRate,
	}
}

// EstimateDetail is the detail-endpoint shape: the estimate row with its
// line items embedded.
type EstimateDetail struct {
	Estimate
	LineItems []EstimateLineItem `json:"line_items"`
}

// EstimateLineItem is one quantity × unit-price entry on an estimate.
type EstimateLineItem struct {
	ID          int64   `json:"id"`
	EstimateID  int64   `json:"estimate_id"`
	ItemName    string  `json:"item_name"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
	Category    string  `json:"category"`
	SortOrder   int     `json:"sort_order"`
}

// PricingItem converts the row into the totals engine's input shape.
func (li EstimateLineItem) PricingItem() pricing.LineItem {
	return pricing.LineItem{
		Description: li.ItemName,
		Quantity:    li.Quantity,
		UnitPrice:   li.UnitPrice,
	}
}

// PricingItems converts a line-item list for pricing.ComputeTotals.
func PricingItems(items []EstimateLineItem) []pricing.LineItem {
	out := make([]pricing.LineItem, len(items))
	for i, li := range items {
		out[i] = li.PricingItem()
	}
	return out
}

// Invoice bills a client, optionally tied to a work order and estimate.
type Invoice struct {
	ID            int64   `json:"id"`
	InvoiceNumber string  `json:"invoice_number"`
	ClientID      int64   `json:"client_id"`
	ClientName    string  `json:"client_name,omitempty"`
	WorkOrderID   int64   `json:"work_order_id"`
	EstimateID    int64   `json:"estimate_id"`
	Title         string  `json:"title"`
	InvoiceDate   string  `json:"invoice_date"`
	DueDate       *string `json:"due_date"`
	Subtotal      float64 `json:"subtotal"`
	TaxRate       float64 `json:"tax_rate"`
	TaxAmount     float64 `json:"tax_amount"`
	TotalAmount   float64 `json:"total_amount"`
	AmountPaid    float64 `json:"amount_paid"`
	Balance       float64 `json:"balance"`
	Status        string  `json:"status"`
	PaymentTerms  string  `json:"payment_terms"`
}

// InvoiceLineItem is one quantity × unit-price entry on an invoice.
type InvoiceLineItem struct {
	ID          int64   `json:"id"`
	InvoiceID   int64   `json:"invoice_id"`
	ItemName    string  `json:"item_name"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
	Category    string  `json:"category"`
	SortOrder   int     `json:"sort_order"`
}

// Payment records money received against an invoice.
type Payment struct {
	ID              int64   `json:"id"`
	PaymentNumber   string  `json:"payment_number"`
	InvoiceID       int64   `json:"invoice_id"`
	ClientID        int64   `json:"client_id"`
	Amount          float64 `json:"amount"`
	PaymentDate     string  `json:"payment_date"`
	PaymentMethod   string  `json:"payment_method"`
	ReferenceNumber string  `json:"reference_number"`
	Notes           string  `json:"notes"`
}

// ChangeOrder amends an approved work order's scope and price.
type ChangeOrder struct {
	ID                int64   `json:"id"`
	ChangeOrderNumber string  `json:"change_order_number"`
	WorkOrderID       int64   `json:"work_order_id"`
	ClientID          int64   `json:"client_id"`
	ClientName        string  `json:"client_name,omitempty"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	Reason            string  `json:"reason"`
	OriginalAmount    float64 `json:"original_amount"`
	ChangeAmount      float64 `json:"change_amount"`
	NewTotal          float64 `json:"new_total"`
	Status            string  `json:"status"`
	ApprovedBy        string  `json:"approved_by"`
	ApprovedDate      *string `json:"approved_date"`
}

// Equipment is a dryer, dehumidifier, air scrubber, or similar asset.
type Equipment struct {
	ID                 int64   `json:"id"`
	EquipmentNumber    string  `json:"equipment_number"`
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	Model              string  `json:"model"`
	SerialNumber       string  `json:"serial_number"`
	PurchaseDate       string  `json:"purchase_date"`
	PurchasePrice      float64 `json:"purchase_price"`
	Status             string  `json:"status"`
	Location           string  `json:"location"`
	AssignedTo         int64   `json:"assigned_to"`
	MaintenanceDueDate *string `json:"maintenance_due_date"`
	Notes              string  `json:"notes"`
}

// EquipmentLog tracks one deployment of a piece of equipment on a job site.
type EquipmentLog struct {
	ID            int64   `json:"id"`
	EquipmentID   int64   `json:"equipment_id"`
	WorkOrderID   int64   `json:"work_order_id"`
	DeployedDate  string  `json:"deployed_date"`
	RetrievedDate *string `json:"retrieved_date"`
	Location      string  `json:"location"`
	Readings      string  `json:"readings"`
	HoursUsed     float64 `json:"hours_used"`
	Notes         string  `json:"notes"`
}

// MoistureLog is one moisture reading taken during a dry-out job.
type MoistureLog struct {
	ID              int64   `json:"id"`
	JobID           int64   `json:"job_id"`
	WorkOrderID     int64   `json:"work_order_id"`
	LogDate         string  `json:"log_date"`
	Location        string  `json:"location"`
	MaterialType    string  `json:"material_type"`
	MoistureReading float64 `json:"moisture_reading"`
	TargetReading   float64 `json:"target_reading"`
	Temperature     float64 `json:"temperature"`
	Humidity        float64 `json:"humidity"`
	Technician      string  `json:"technician"`
	Notes           string  `json:"notes"`
}

// PriceListEntry is a unit-priced catalog item used to build estimates.
type PriceListEntry struct {
	ID            int64   `json:"id"`
	ItemCode      string  `json:"item_code"`
	ItemName      string  `json:"item_name"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Subcategory   string  `json:"subcategory"`
	Unit          string  `json:"unit"`
	UnitPrice     float64 `json:"unit_price"`
	LaborRate     float64 `json:"labor_rate"`
	MaterialCost  float64 `json:"material_cost"`
	XactimateCode string  `json:"xactimate_code"`
	Active        bool    `json:"active"`
}

// Message is one outbound or inbound client communication.
type Message struct {
	ID        int64  `json:"id"`
	ClientID  int64  `json:"client_id"`
	Channel   string `json:"channel"` // sms or email
	Direction string `json:"direction"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Status    string `json:"status"`
	SentAt    string `json:"sent_at"`
}

// CalendarEvent is a scheduled appointment. Unlike the other rows it is
// owned locally (through the store package), not by the backend.
type CalendarEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	EventType   string `json:"event_type"`
	EventDate   string `json:"event_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}
