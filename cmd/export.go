package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"restodesk/export"
	"restodesk/models"
	"restodesk/tabular"
)

var (
	exportQuery     tableQuery
	exportFormat    string
	exportOut       string
	exportInvoiceID int64
)

var resourceTitles = map[string]string{
	"clients":       "Clients",
	"employees":     "Employees",
	"work-orders":   "Work Orders",
	"estimates":     "Estimates",
	"invoices":      "Invoices",
	"payments":      "Payments",
	"change-orders": "Change Orders",
	"equipment":     "Equipment",
	"moisture-logs": "Moisture Logs",
	"price-list":    "Price List",
	"messages":      "Messages",
}

var exportCmd = &cobra.Command{
	Use:   "export <resource>",
	Short: "Export a backend resource as csv, xlsx, pdf, or html",
	Long: `Export fetches a resource, applies the same search/filter/sort flags as
browse, and writes the full result set (never a single page) in the chosen
format.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resource := args[0]
		title, ok := resourceTitles[resource]
		if !ok {
			return fmt.Errorf("unknown resource %q", resource)
		}
		if err := validateFilters(resource, exportQuery.filters); err != nil {
			return err
		}

		snap, err := snapshotResource(cmd.Context(), resource)
		if err != nil {
			return err
		}

		data, err := encodeSnapshot(export.TableDocument{Title: title, Snapshot: snap}, exportFormat)
		if err != nil {
			return err
		}

		if exportOut == "" || exportOut == "-" {
			_, err := cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(exportOut, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", exportOut, err)
		}
		logger.Info().Str("file", exportOut).Int("rows", len(snap.Rows)).Msg("exported")
		return nil
	},
}

func snapshotResource(ctx context.Context, resource string) (tabular.Snapshot, error) {
	c := api()
	switch resource {
	case "clients":
		rows, err := c.ListClients(ctx)
		if err != nil {
			return tabular.Snapshot{}, err
		}
		return querySnapshot(rows, models.ClientColumns(), exportQuery)
	case "employees":
		rows, err := c.ListEmployees(ctx)
		if err != nil {
			return tabular.Snapshot{}, err
		}
		return querySnapshot(rows, models.EmployeeColumns(), exportQuery)
	case "work-orders":
		rows, err := c.ListWorkOrders(ctx)
		if err != nil {
			return tabular.Snapshot{}, err
		}
		return querySnapshot(rows, models.WorkOrderColumns(), exportQuery)
	case "estimates":
		rows, err := c.ListEstimates(ctx)
		if err != nil {
			return tabular.Snapshot{}, err
		}
		return querySnapshot(rows, models.EstimateColumns(), exportQuery)
	case "invoices":
		rows, err := c.ListInvoices(ctx)
		if err != nil {
			return tabular.Snapshot{}, err
		}
		return querySnapshot(rows, models.InvoiceColumns(), exportQuery)
	case "payments":
		rows, err := listPayments(ctx, c, exportInvoiceID)
		if err != nil {
			return tabular.Snapshot{}, err
		}
		return querySnapshot(rows, models.PaymentColumns(), exportQuery)
	case "change-orders":
		rows, err := c.ListChangeOrders(ctx)
		if err != nil {
			return tabular.Snapshot{}, err
		}
		return querySnapshot(rows, models.ChangeOrderColumns(), exportQuery)
	case "equipment":
		rows, err := c.ListEquipment(ctx)
		if err != nil {
			return tabular.Snapshot{}, err
		}
		return querySnapshot(rows, models.EquipmentColumns(), exportQuery)
	case "moisture-logs":
		rows, err := c.ListMoistureLogs(ctx)
		if err != nil {
			return tabular.Snapshot{}, err
		}
		return querySnapshot(rows, models.MoistureLogColumns(), exportQuery)
	case "price-list":
		rows, err := c.ListPriceList(ctx)
		if err != nil {
			return tabular.Snapshot{}, err
		}
		return querySnapshot(rows, models.PriceListColumns(), exportQuery)
	case "messages":
		rows, err := c.ListMessages(ctx)
		if err != nil {
			return tabular.Snapshot{}, err
		}
		return querySnapshot(rows, models.MessageColumns(), exportQuery)
	default:
		return tabular.Snapshot{}, fmt.Errorf("unknown resource %q", resource)
	}
}

func encodeSnapshot(doc export.TableDocument, format string) ([]byte, error) {
	switch format {
	case "csv":
		return tabular.SnapshotCSV(doc.Snapshot)
	case "xlsx":
		return export.TableExcel(doc)
	case "pdf":
		return export.TablePDF(doc)
	case "html":
		var buf bytes.Buffer
		if err := export.WriteTableHTML(context.Background(), &buf, doc); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format %q, want csv, xlsx, pdf, or html", format)
	}
}

func init() {
	addQueryFlags(exportCmd, &exportQuery)
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "output format: csv, xlsx, pdf, html")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "output file (default stdout)")
	exportCmd.Flags().Int64Var(&exportInvoiceID, "invoice", 0, "limit payments to one invoice")
	rootCmd.AddCommand(exportCmd)
}
