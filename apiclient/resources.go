package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"restodesk/models"
)

// Resource paths as the backend routes them.
const (
	ResourceClients      = "clients"
	ResourceEmployees    = "employees"
	ResourceWorkOrders   = "work-orders"
	ResourceEstimates    = "estimates"
	ResourceInvoices     = "invoices"
	ResourcePayments     = "payments"
	ResourceChangeOrders = "change-orders"
	ResourceEquipment    = "equipment"
	ResourceMoistureLogs = "moisture-logs"
	ResourcePriceList    = "price-list"
	ResourceMessages     = "messages"
)

func (c *Client) ListClients(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	err := c.List(ctx, ResourceClients, &out)
	return out, err
}

func (c *Client) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var out []models.Employee
	err := c.List(ctx, ResourceEmployees, &out)
	return out, err
}

func (c *Client) ListWorkOrders(ctx context.Context) ([]models.WorkOrder, error) {
	var out []models.WorkOrder
	err := c.List(ctx, ResourceWorkOrders, &out)
	return out, err
}

func (c *Client) ListEstimates(ctx context.Context) ([]models.Estimate, error) {
	var out []models.Estimate
	err := c.List(ctx, ResourceEstimates, &out)
	return out, err
}

// GetEstimate fetches one estimate with its line items embedded, the shape
// the backend's detail endpoint returns.
func (c *Client) GetEstimate(ctx context.Context, id int64) (models.EstimateDetail, error) {
	var out models.EstimateDetail
	err := c.Get(ctx, ResourceEstimates, id, &out)
	return out, err
}

// EstimateLineItems fetches the line items of one estimate from the nested
// /estimates/<id>/line-items route.
func (c *Client) EstimateLineItems(ctx context.Context, estimateID int64) ([]models.EstimateLineItem, error) {
	var out []models.EstimateLineItem
	path := fmt.Sprintf("/%s/%d/line-items", ResourceEstimates, estimateID)
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	var out []models.Invoice
	err := c.List(ctx, ResourceInvoices, &out)
	return out, err
}

func (c *Client) ListPayments(ctx context.Context) ([]models.Payment, error) {
	var out []models.Payment
	err := c.List(ctx, ResourcePayments, &out)
	return out, err
}

// InvoicePayments fetches payments recorded against one invoice.
func (c *Client) InvoicePayments(ctx context.Context, invoiceID int64) ([]models.Payment, error) {
	var out []models.Payment
	path := fmt.Sprintf("/%s/invoice/%d", ResourcePayments, invoiceID)
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) ListChangeOrders(ctx context.Context) ([]models.ChangeOrder, error) {
	var out []models.ChangeOrder
	err := c.List(ctx, ResourceChangeOrders, &out)
	return out, err
}

func (c *Client) ListEquipment(ctx context.Context) ([]models.Equipment, error) {
	var out []models.Equipment
	err := c.List(ctx, ResourceEquipment, &out)
	return out, err
}

func (c *Client) ListMoistureLogs(ctx context.Context) ([]models.MoistureLog, error) {
	var out []models.MoistureLog
	err := c.List(ctx, ResourceMoistureLogs, &out)
	return out, err
}

func (c *Client) ListPriceList(ctx context.Context) ([]models.PriceListEntry, error) {
	var out []models.PriceListEntry
	err := c.List(ctx, ResourcePriceList, &out)
	return out, err
}

func (c *Client) ListMessages(ctx context.Context) ([]models.Message, error) {
	var out []models.Message
	err := c.List(ctx, ResourceMessages, &out)
	return out, err
}
