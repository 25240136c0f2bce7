package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"restodesk/models"
	"restodesk/store"
	"restodesk/tabular"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Manage locally stored calendar events",
}

var calendarAddEvent models.CalendarEvent

var calendarAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a calendar event",
	RunE: func(cmd *cobra.Command, args []string) error {
		if calendarAddEvent.Title == "" {
			return fmt.Errorf("--title is required")
		}
		if calendarAddEvent.EventDate == "" {
			return fmt.Errorf("--date is required")
		}

		book, closeStore, err := openCalendar()
		if err != nil {
			return err
		}
		defer closeStore()

		ev, err := book.Add(calendarAddEvent)
		if err != nil {
			return err
		}
		logger.Info().Str("id", ev.ID).Str("date", ev.EventDate).Msg("event saved")
		fmt.Fprintln(cmd.OutOrStdout(), ev.ID)
		return nil
	},
}

var calendarListCmd = &cobra.Command{
	Use:   "list",
	Short: "List calendar events in date order",
	RunE: func(cmd *cobra.Command, args []string) error {
		book, closeStore, err := openCalendar()
		if err != nil {
			return err
		}
		defer closeStore()

		events, err := book.Events()
		if err != nil {
			return err
		}

		b := tabular.New(events, models.CalendarEventColumns())
		b.SetPageSize(len(events) + 1)
		return renderPage(cmd.OutOrStdout(), b, tableQuery{})
	},
}

var calendarRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a calendar event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		book, closeStore, err := openCalendar()
		if err != nil {
			return err
		}
		defer closeStore()

		if err := book.Remove(args[0]); err != nil {
			return err
		}
		logger.Info().Str("id", args[0]).Msg("event removed")
		return nil
	},
}

// openCalendar opens the local state database, creating the data dir on
// first use.
func openCalendar() (*store.CalendarBook, func(), error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}
	s, err := store.OpenSQLite(cfg.StorePath())
	if err != nil {
		return nil, nil, err
	}
	return store.NewCalendarBook(s), func() { s.Close() }, nil
}

func init() {
	calendarAddCmd.Flags().StringVar(&calendarAddEvent.Title, "title", "", "event title")
	calendarAddCmd.Flags().StringVar(&calendarAddEvent.EventDate, "date", "", "event date (YYYY-MM-DD)")
	calendarAddCmd.Flags().StringVar(&calendarAddEvent.StartTime, "start", "", "start time (HH:MM)")
	calendarAddCmd.Flags().StringVar(&calendarAddEvent.EndTime, "end", "", "end time (HH:MM)")
	calendarAddCmd.Flags().StringVar(&calendarAddEvent.EventType, "type", "appointment", "event type")
	calendarAddCmd.Flags().StringVar(&calendarAddEvent.Location, "location", "", "event location")
	calendarAddCmd.Flags().StringVar(&calendarAddEvent.Notes, "notes", "", "free-form notes")

	calendarCmd.AddCommand(calendarAddCmd, calendarListCmd, calendarRemoveCmd)
	rootCmd.AddCommand(calendarCmd)
}
