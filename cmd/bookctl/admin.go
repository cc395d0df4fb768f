package main

import (
	"errors"
	"text/tabwriter"

	"github.com/savioruz/bookease/internal/audit"
	"github.com/savioruz/bookease/pkg/apiclient"
	"github.com/savioruz/bookease/pkg/constant"
	"github.com/spf13/cobra"
)

func adminCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Audit and cancel bookings (admin only)",
	}

	cmd.AddCommand(adminListCmd(c), adminDeleteCmd(c))

	return cmd
}

func adminListCmd(c *cli) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every booking",
		RunE: func(cmd *cobra.Command, _ []string) error {
			panel := c.panel(false)

			if err := panel.Load(cmd.Context()); err != nil {
				return err
			}

			c.printBookings(panel.Search(search))

			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter by name or email, ignoring case")

	return cmd
}

func adminDeleteCmd(c *cli) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			panel := c.panel(yes)

			if err := panel.Delete(cmd.Context(), args[0]); err != nil {
				if errors.Is(err, audit.ErrDeclined) {
					c.printf("Cancelled.\n")

					return nil
				}

				if errors.Is(err, audit.ErrRefreshFailed) {
					c.printf("%s.\n", audit.MsgRefreshFailed)

					return nil
				}

				return err
			}

			c.printf("Booking deleted. %d remaining.\n", len(panel.All()))

			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func (c *cli) panel(assumeYes bool) *audit.Panel {
	confirmer := audit.ConfirmFunc(c.confirm)
	if assumeYes {
		confirmer = func(string) bool { return true }
	}

	return audit.New(c.client, c.session, confirmer, c.logger)
}

func (c *cli) printBookings(bookings []apiclient.Booking) {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)

	c.fprintf(w, "ID\tNAME\tEMAIL\tDATE\tTIME\tDURATION\tSERVICE\n")

	for _, b := range bookings {
		duration := b.DurationMinutes
		if duration == 0 {
			duration = constant.BookingDefaultDurationMinutes
		}

		c.fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d mins\t%s\n", b.ID, b.Username, b.Email, b.Date, b.Time, duration, b.ServiceID)
	}

	_ = w.Flush()
}
