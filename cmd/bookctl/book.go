package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/savioruz/bookease/internal/checkout"
	"github.com/savioruz/bookease/internal/reservation"
	"github.com/spf13/cobra"
)

func slotsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "slots <date>",
		Short: "Show booked and free slots for a date (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orch := c.orchestrator(nil)
			defer orch.Close()

			orch.Subscribe(reservation.ObserverFunc(func(e reservation.Event) {
				if n, ok := e.(reservation.Notice); ok {
					c.printf("%s\n", n.Message)
				}
			}))

			if err := orch.SelectDate(cmd.Context(), args[0]); err != nil {
				return err
			}

			c.printGrid(orch.Snapshot())

			return nil
		},
	}
}

func bookCmd(c *cli) *cobra.Command {
	var receiptPath string

	cmd := &cobra.Command{
		Use:   "book <date> <time>",
		Short: "Pay for and book a slot, e.g. book 2030-03-10 \"10:00 AM\"",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.book(cmd.Context(), args[0], strings.Join(args[1:], " "), receiptPath)
		},
	}

	cmd.Flags().StringVar(&receiptPath, "receipt", "", "where to write the receipt (default receipt-<date>.html)")

	return cmd
}

func (c *cli) orchestrator(term *checkout.Terminal) *reservation.Orchestrator {
	policy := reservation.PolicyFromConfig(c.cfg.Client)

	var adapter reservation.CheckoutAdapter = closedCheckout{}
	if term != nil {
		adapter = term
	}

	return reservation.New(c.client, c.session, adapter, reservation.NewCatalogue(c.cfg.Client.Slots), policy, c.logger)
}

func (c *cli) book(ctx context.Context, date, slot, receiptPath string) error {
	term := checkout.NewTerminal(c.in, c.out, c.client, c.logger)

	orch := c.orchestrator(term)
	defer orch.Close()

	navigated := make(chan reservation.Receipt, 1)

	orch.Subscribe(reservation.ObserverFunc(func(e reservation.Event) {
		switch ev := e.(type) {
		case reservation.Notice:
			c.printf("%s\n", ev.Message)
		case reservation.Navigate:
			navigated <- ev.Receipt
		}
	}))

	if err := orch.SelectDate(ctx, date); err != nil {
		return err
	}

	if err := orch.SelectTime(slot); err != nil {
		if errors.Is(err, reservation.ErrSlotBooked) {
			c.printGrid(orch.Snapshot())
		}

		return err
	}

	if err := orch.Submit(ctx); err != nil {
		return err
	}

	term.Wait()

	snap := orch.Snapshot()

	switch snap.State {
	case reservation.StateSuccess:
	case reservation.StateFailed:
		return snap.Failure
	default:
		c.printf("Nothing was booked.\n")

		return nil
	}

	var receipt reservation.Receipt

	select {
	case receipt = <-navigated:
	case <-ctx.Done():
		receipt = *snap.Receipt
	}

	if receiptPath == "" {
		receiptPath = fmt.Sprintf("receipt-%s.html", date)
	}

	f, err := os.Create(receiptPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := receipt.Render(f); err != nil {
		return err
	}

	c.printf("Booked %s at %s. Payment %s. Receipt written to %s\n", receipt.Date, receipt.Time, receipt.PaymentID, receiptPath)

	return nil
}

func (c *cli) printGrid(snap reservation.Snapshot) {
	c.printf("Slots for %s\n", snap.Date)

	for _, s := range snap.Grid {
		status := "free"
		if s.Booked {
			status = "booked"
		}

		c.printf("  %-8s  %s\n", s.Label, status)
	}
}

// closedCheckout backs read-only commands that never submit.
type closedCheckout struct{}

func (closedCheckout) Open(context.Context, reservation.CheckoutRequest, reservation.Resumer) error {
	return errors.New("checkout is not available here")
}
