package models

// Option lists for the status and category dropdowns the views render.

var WorkOrderStatuses = []string{"pending", "scheduled", "in_progress", "on_hold", "completed", "cancelled"}

var WorkOrderPriorities = []string{"low", "medium", "high", "urgent"}

var EstimateStatuses = []string{"draft", "sent", "approved", "declined", "expired"}

var InvoiceStatuses = []string{"draft", "sent", "partial", "paid", "overdue", "void"}

var ChangeOrderStatuses = []string{"pending", "approved", "rejected"}

var EquipmentStatuses = []string{"available", "deployed", "maintenance", "retired"}

var EquipmentCategories = []string{
	"Dehumidifier",
	"Air Mover",
	"Air Scrubber",
	"Moisture Meter",
	"Thermal Camera",
	"Extractor",
	"Generator",
}

var PaymentMethods = []string{"check", "cash", "credit_card", "ach", "insurance_direct"}

var LossTypes = []string{"water", "fire", "mold", "storm", "sewage"}

// KnownOptions returns the recognized values for a resource column that is
// backed by one of the dropdown lists above, or nil for free-form columns.
func KnownOptions(resource, key string) []string {
	switch resource + "/" + key {
	case "work-orders/status":
		return WorkOrderStatuses
	case "work-orders/priority":
		return WorkOrderPriorities
	case "estimates/status":
		return EstimateStatuses
	case "invoices/status":
		return InvoiceStatuses
	case "change-orders/status":
		return ChangeOrderStatuses
	case "equipment/status":
		return EquipmentStatuses
	case "equipment/category":
		return EquipmentCategories
	case "payments/payment_method":
		return PaymentMethods
	}
	return nil
}
