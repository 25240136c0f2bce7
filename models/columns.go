package models

import (
	"restodesk/pricing"
	"restodesk/tabular"
)

// Column sets for the browsable list views. Keys match the backend's field
// names so saved filters and sort state stay meaningful across resources.

func ClientColumns() []tabular.Column[Client] {
	return []tabular.Column[Client]{
		{Key: "name", Label: "Name", Value: func(c Client) any { return c.Name }, Sortable: true},
		{Key: "company", Label: "Company", Value: func(c Client) any { return c.Company }, Sortable: true, Filterable: true},
		{Key: "email", Label: "Email", Value: func(c Client) any { return c.Email }, Sortable: true},
		{Key: "phone", Label: "Phone", Value: func(c Client) any { return c.Phone }},
		{Key: "city", Label: "City", Value: func(c Client) any { return c.City }, Sortable: true, Filterable: true},
		{Key: "status", Label: "Status", Value: func(c Client) any { return c.Status }, Sortable: true, Filterable: true},
	}
}

func EmployeeColumns() []tabular.Column[Employee] {
	return []tabular.Column[Employee]{
		{Key: "employee_number", Label: "Emp #", Value: func(e Employee) any { return e.EmployeeNumber }, Sortable: true},
		{Key: "first_name", Label: "First Name", Value: func(e Employee) any { return e.FirstName }, Sortable: true},
		{Key: "last_name", Label: "Last Name", Value: func(e Employee) any { return e.LastName }, Sortable: true},
		{Key: "position", Label: "Position", Value: func(e Employee) any { return e.Position }, Sortable: true, Filterable: true},
		{Key: "phone", Label: "Phone", Value: func(e Employee) any { return e.Phone }},
		{Key: "status", Label: "Status", Value: func(e Employee) any { return e.Status }, Sortable: true, Filterable: true},
	}
}

func WorkOrderColumns() []tabular.Column[WorkOrder] {
	return []tabular.Column[WorkOrder]{
		{Key: "work_order_number", Label: "WO #", Value: func(w WorkOrder) any { return w.WorkOrderNumber }, Sortable: true},
		{Key: "title", Label: "Title", Value: func(w WorkOrder) any { return w.Title }, Sortable: true},
		{Key: "client_name", Label: "Client", Value: func(w WorkOrder) any { return w.ClientName }, Sortable: true},
		{Key: "employee_name", Label: "Assigned To", Value: func(w WorkOrder) any { return w.EmployeeName }, Filterable: true},
		{Key: "priority", Label: "Priority", Value: func(w WorkOrder) any { return w.Priority }, Sortable: true, Filterable: true},
		{Key: "status", Label: "Status", Value: func(w WorkOrder) any { return w.Status }, Sortable: true, Filterable: true},
		{Key: "scheduled_date", Label: "Scheduled", Value: func(w WorkOrder) any { return optional(w.ScheduledDate) }, Sortable: true},
	}
}

func EstimateColumns() []tabular.Column[Estimate] {
	return []tabular.Column[Estimate]{
		{Key: "estimate_number", Label: "Estimate #", Value: func(e Estimate) any { return e.EstimateNumber }, Sortable: true},
		{Key: "title", Label: "Title", Value: func(e Estimate) any { return e.Title }, Sortable: true},
		{Key: "client_name", Label: "Client", Value: func(e Estimate) any { return e.ClientName }, Sortable: true},
		{Key: "total_amount", Label: "Total", Value: func(e Estimate) any { return e.TotalAmount },
			Render: func(e Estimate) string { return pricing.FormatUSD(e.TotalAmount) }, Sortable: true},
		{Key: "status", Label: "Status", Value: func(e Estimate) any { return e.Status }, Sortable: true, Filterable: true},
		{Key: "valid_until", Label: "Valid Until", Value: func(e Estimate) any { return optional(e.ValidUntil) }, Sortable: true},
	}
}

func InvoiceColumns() []tabular.Column[Invoice] {
	return []tabular.Column[Invoice]{
		{Key: "invoice_number", Label: "Invoice #", Value: func(i Invoice) any { return i.InvoiceNumber }, Sortable: true},
		{Key: "client_name", Label: "Client", Value: func(i Invoice) any { return i.ClientName }, Sortable: true},
		{Key: "invoice_date", Label: "Date", Value: func(i Invoice) any { return i.InvoiceDate }, Sortable: true},
		{Key: "due_date", Label: "Due", Value: func(i Invoice) any { return optional(i.DueDate) }, Sortable: true},
		{Key: "total_amount", Label: "Total", Value: func(i Invoice) any { return i.TotalAmount },
			Render: func(i Invoice) string { return pricing.FormatUSD(i.TotalAmount) }, Sortable: true},
		{Key: "balance", Label: "Balance", Value: func(i Invoice) any { return i.Balance },
			Render: func(i Invoice) string { return pricing.FormatUSD(i.Balance) }, Sortable: true},
		{Key: "status", Label: "Status", Value: func(i Invoice) any { return i.Status }, Sortable: true, Filterable: true},
	}
}

func PaymentColumns() []tabular.Column[Payment] {
	return []tabular.Column[Payment]{
		{Key: "payment_number", Label: "Payment #", Value: func(p Payment) any { return p.PaymentNumber }, Sortable: true},
		{Key: "payment_date", Label: "Date", Value: func(p Payment) any { return p.PaymentDate }, Sortable: true},
		{Key: "amount", Label: "Amount", Value: func(p Payment) any { return p.Amount },
			Render: func(p Payment) string { return pricing.FormatUSD(p.Amount) }, Sortable: true},
		{Key: "payment_method", Label: "Method", Value: func(p Payment) any { return p.PaymentMethod }, Sortable: true, Filterable: true},
		{Key: "reference_number", Label: "Reference", Value: func(p Payment) any { return p.ReferenceNumber }},
	}
}

func ChangeOrderColumns() []tabular.Column[ChangeOrder] {
	return []tabular.Column[ChangeOrder]{
		{Key: "change_order_number", Label: "CO #", Value: func(c ChangeOrder) any { return c.ChangeOrderNumber }, Sortable: true},
		{Key: "title", Label: "Title", Value: func(c ChangeOrder) any { return c.Title }, Sortable: true},
		{Key: "client_name", Label: "Client", Value: func(c ChangeOrder) any { return c.ClientName }, Sortable: true},
		{Key: "change_amount", Label: "Change", Value: func(c ChangeOrder) any { return c.ChangeAmount },
			Render: func(c ChangeOrder) string { return pricing.FormatUSD(c.ChangeAmount) }, Sortable: true},
		{Key: "new_total", Label: "New Total", Value: func(c ChangeOrder) any { return c.NewTotal },
			Render: func(c ChangeOrder) string { return pricing.FormatUSD(c.NewTotal) }, Sortable: true},
		{Key: "status", Label: "Status", Value: func(c ChangeOrder) any { return c.Status }, Sortable: true, Filterable: true},
		{Key: "approved_date", Label: "Approved", Value: func(c ChangeOrder) any { return optional(c.ApprovedDate) }, Sortable: true},
	}
}

func EquipmentColumns() []tabular.Column[Equipment] {
	return []tabular.Column[Equipment]{
		{Key: "equipment_number", Label: "Unit #", Value: func(e Equipment) any { return e.EquipmentNumber }, Sortable: true},
		{Key: "name", Label: "Name", Value: func(e Equipment) any { return e.Name }, Sortable: true},
		{Key: "category", Label: "Category", Value: func(e Equipment) any { return e.Category }, Sortable: true, Filterable: true},
		{Key: "status", Label: "Status", Value: func(e Equipment) any { return e.Status }, Sortable: true, Filterable: true},
		{Key: "location", Label: "Location", Value: func(e Equipment) any { return e.Location }, Filterable: true},
		{Key: "maintenance_due_date", Label: "Maintenance Due", Value: func(e Equipment) any { return optional(e.MaintenanceDueDate) }, Sortable: true},
	}
}

func MoistureLogColumns() []tabular.Column[MoistureLog] {
	return []tabular.Column[MoistureLog]{
		{Key: "log_date", Label: "Date", Value: func(m MoistureLog) any { return m.LogDate }, Sortable: true},
		{Key: "location", Label: "Location", Value: func(m MoistureLog) any { return m.Location }, Sortable: true, Filterable: true},
		{Key: "material_type", Label: "Material", Value: func(m MoistureLog) any { return m.MaterialType }, Filterable: true},
		{Key: "moisture_reading", Label: "Reading %", Value: func(m MoistureLog) any { return m.MoistureReading }, Sortable: true},
		{Key: "target_reading", Label: "Target %", Value: func(m MoistureLog) any { return m.TargetReading }},
		{Key: "temperature", Label: "Temp °F", Value: func(m MoistureLog) any { return m.Temperature }, Sortable: true},
		{Key: "humidity", Label: "RH %", Value: func(m MoistureLog) any { return m.Humidity }, Sortable: true},
		{Key: "technician", Label: "Technician", Value: func(m MoistureLog) any { return m.Technician }, Filterable: true},
	}
}

func PriceListColumns() []tabular.Column[PriceListEntry] {
	return []tabular.Column[PriceListEntry]{
		{Key: "item_code", Label: "Code", Value: func(p PriceListEntry) any { return p.ItemCode }, Sortable: true},
		{Key: "item_name", Label: "Item", Value: func(p PriceListEntry) any { return p.ItemName }, Sortable: true},
		{Key: "category", Label: "Category", Value: func(p PriceListEntry) any { return p.Category }, Sortable: true, Filterable: true},
		{Key: "unit", Label: "Unit", Value: func(p PriceListEntry) any { return p.Unit }, Filterable: true},
		{Key: "unit_price", Label: "Unit Price", Value: func(p PriceListEntry) any { return p.UnitPrice },
			Render: func(p PriceListEntry) string { return pricing.FormatUSD(p.UnitPrice) }, Sortable: true},
		{Key: "xactimate_code", Label: "Xactimate", Value: func(p PriceListEntry) any { return p.XactimateCode }, NoSearch: true},
	}
}

func MessageColumns() []tabular.Column[Message] {
	return []tabular.Column[Message]{
		{Key: "sent_at", Label: "Sent", Value: func(m Message) any { return m.SentAt }, Sortable: true},
		{Key: "channel", Label: "Channel", Value: func(m Message) any { return m.Channel }, Filterable: true},
		{Key: "recipient", Label: "Recipient", Value: func(m Message) any { return m.Recipient }, Sortable: true},
		{Key: "subject", Label: "Subject", Value: func(m Message) any { return m.Subject }},
		{Key: "status", Label: "Status", Value: func(m Message) any { return m.Status }, Sortable: true, Filterable: true},
	}
}

func CalendarEventColumns() []tabular.Column[CalendarEvent] {
	return []tabular.Column[CalendarEvent]{
		{Key: "event_date", Label: "Date", Value: func(e CalendarEvent) any { return e.EventDate }, Sortable: true},
		{Key: "start_time", Label: "Start", Value: func(e CalendarEvent) any { return e.StartTime }, Sortable: true},
		{Key: "title", Label: "Title", Value: func(e CalendarEvent) any { return e.Title }, Sortable: true},
		{Key: "event_type", Label: "Type", Value: func(e CalendarEvent) any { return e.EventType }, Filterable: true},
		{Key: "location", Label: "Location", Value: func(e CalendarEvent) any { return e.Location }},
		{Key: "status", Label: "Status", Value: func(e CalendarEvent) any { return e.Status }, Filterable: true},
	}
}

// optional unwraps a pointer field for the browser: nil stays nil so the
// sort pipeline can push missing values last.
func optional(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
