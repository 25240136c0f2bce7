package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"restodesk/apiclient"
	"restodesk/models"
	"restodesk/tabular"
)

var (
	browseQuery     tableQuery
	browseInvoiceID int64
)

var browseCmd = &cobra.Command{
	Use:   "browse <resource>",
	Short: "Browse a backend resource as a paged table",
	Long: `Browse fetches a resource from the backend and renders one page of it,
after applying the search term, column filters, and sort order. Resources:
clients, work-orders, estimates, invoices, payments, change-orders,
equipment, moisture-logs, price-list, messages, employees.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resource := args[0]
		if browseQuery.pageSize == 0 {
			browseQuery.pageSize = cfg.PageSize
		}
		if err := validateFilters(resource, browseQuery.filters); err != nil {
			return err
		}
		logger.Debug().Str("resource", resource).Msg("browsing")

		ctx := cmd.Context()
		c := api()
		w := cmd.OutOrStdout()

		switch resource {
		case "clients":
			rows, err := c.ListClients(ctx)
			if err != nil {
				return err
			}
			return renderPage(w, tabular.New(rows, models.ClientColumns()), browseQuery)
		case "employees":
			rows, err := c.ListEmployees(ctx)
			if err != nil {
				return err
			}
			return renderPage(w, tabular.New(rows, models.EmployeeColumns()), browseQuery)
		case "work-orders":
			rows, err := c.ListWorkOrders(ctx)
			if err != nil {
				return err
			}
			return renderPage(w, tabular.New(rows, models.WorkOrderColumns()), browseQuery)
		case "estimates":
			rows, err := c.ListEstimates(ctx)
			if err != nil {
				return err
			}
			return renderPage(w, tabular.New(rows, models.EstimateColumns()), browseQuery)
		case "invoices":
			rows, err := c.ListInvoices(ctx)
			if err != nil {
				return err
			}
			return renderPage(w, tabular.New(rows, models.InvoiceColumns()), browseQuery)
		case "payments":
			rows, err := listPayments(ctx, c, browseInvoiceID)
			if err != nil {
				return err
			}
			return renderPage(w, tabular.New(rows, models.PaymentColumns()), browseQuery)
		case "change-orders":
			rows, err := c.ListChangeOrders(ctx)
			if err != nil {
				return err
			}
			return renderPage(w, tabular.New(rows, models.ChangeOrderColumns()), browseQuery)
		case "equipment":
			rows, err := c.ListEquipment(ctx)
			if err != nil {
				return err
			}
			return renderPage(w, tabular.New(rows, models.EquipmentColumns()), browseQuery)
		case "moisture-logs":
			rows, err := c.ListMoistureLogs(ctx)
			if err != nil {
				return err
			}
			return renderPage(w, tabular.New(rows, models.MoistureLogColumns()), browseQuery)
		case "price-list":
			rows, err := c.ListPriceList(ctx)
			if err != nil {
				return err
			}
			return renderPage(w, tabular.New(rows, models.PriceListColumns()), browseQuery)
		case "messages":
			rows, err := c.ListMessages(ctx)
			if err != nil {
				return err
			}
			return renderPage(w, tabular.New(rows, models.MessageColumns()), browseQuery)
		default:
			return fmt.Errorf("unknown resource %q", resource)
		}
	},
}

// listPayments narrows to one invoice's payments when an id is given,
// matching the backend's /payments/invoice/<id> route.
func listPayments(ctx context.Context, c *apiclient.Client, invoiceID int64) ([]models.Payment, error) {
	if invoiceID > 0 {
		return c.InvoicePayments(ctx, invoiceID)
	}
	return c.ListPayments(ctx)
}

func init() {
	addQueryFlags(browseCmd, &browseQuery)
	browseCmd.Flags().IntVar(&browseQuery.page, "page", 1, "page to show")
	browseCmd.Flags().IntVar(&browseQuery.pageSize, "page-size", 0, "rows per page")
	browseCmd.Flags().Int64Var(&browseInvoiceID, "invoice", 0, "limit payments to one invoice")
	rootCmd.AddCommand(browseCmd)
}

// addQueryFlags registers the flags shared by browse and export.
func addQueryFlags(cmd *cobra.Command, q *tableQuery) {
	cmd.Flags().StringVar(&q.search, "search", "", "case-insensitive search across columns")
	cmd.Flags().StringArrayVar(&q.filters, "filter", nil, "column filter, key=value (repeatable)")
	cmd.Flags().StringVar(&q.sortKey, "sort", "", "column key to sort by")
	cmd.Flags().BoolVar(&q.desc, "desc", false, "sort descending")
}
