package checkout

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/savioruz/bookease/internal/reservation"
	"github.com/savioruz/bookease/pkg/apiclient"
	"github.com/savioruz/bookease/pkg/constant"
	"github.com/savioruz/bookease/pkg/logger"
)

const identifier = "checkout - %s"

// Payer plays the provider for the signature gateway in development.
type Payer interface {
	FakePay(ctx context.Context, orderID string) (apiclient.Confirmation, error)
}

// Terminal is a checkout shown on a terminal. The prompt runs on its own goroutine and the
// outcome reaches the orchestrator only through the attempt id.
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	payer  Payer
	logger logger.Interface

	mu sync.Mutex
	wg sync.WaitGroup
}

var _ reservation.CheckoutAdapter = (*Terminal)(nil)

func NewTerminal(in io.Reader, out io.Writer, payer Payer, l logger.Interface) *Terminal {
	return &Terminal{
		in:     bufio.NewReader(in),
		out:    out,
		payer:  payer,
		logger: l,
	}
}

func (t *Terminal) Open(ctx context.Context, req reservation.CheckoutRequest, r reservation.Resumer) error {
	if req.OrderID == "" {
		return errors.New("checkout: missing order id")
	}

	t.wg.Add(1)

	go func() {
		defer t.wg.Done()
		t.run(ctx, req, r)
	}()

	return nil
}

// Wait blocks until every opened checkout has reported back.
func (t *Terminal) Wait() {
	t.wg.Wait()
}

func (t *Terminal) run(ctx context.Context, req reservation.CheckoutRequest, r reservation.Resumer) {
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.out, "\n%s\n", req.Name)
	fmt.Fprintf(t.out, "  %s\n", req.Description)
	fmt.Fprintf(t.out, "  Order:  %s\n", req.OrderID)
	fmt.Fprintf(t.out, "  Amount: %s\n", formatAmount(req.Amount, req.Currency))

	if !t.confirm("Pay now? [y/N]: ") || ctx.Err() != nil {
		t.abandon(r, req.AttemptID)

		return
	}

	conf, err := t.pay(ctx, req)
	if err != nil {
		fmt.Fprintf(t.out, "Payment failed: %s\n", apiclient.Message(err))
		t.abandon(r, req.AttemptID)

		return
	}

	if err := r.CompleteCheckout(ctx, req.AttemptID, conf); errors.Is(err, reservation.ErrStaleAttempt) {
		t.logger.Warn(identifier, "complete - "+err.Error())
	}
}

func (t *Terminal) pay(ctx context.Context, req reservation.CheckoutRequest) (apiclient.Confirmation, error) {
	if req.CheckoutURL == "" {
		return t.payer.FakePay(ctx, req.OrderID)
	}

	fmt.Fprintf(t.out, "Complete the payment at:\n  %s\n", req.CheckoutURL)

	if !t.confirm("Finished paying? [y/N]: ") {
		return apiclient.Confirmation{}, errors.New("checkout closed")
	}

	// The hosted gateway is checked server side by order id.
	return apiclient.Confirmation{OrderID: req.OrderID}, nil
}

func (t *Terminal) abandon(r reservation.Resumer, attemptID string) {
	fmt.Fprintln(t.out, "Checkout closed.")

	if err := r.AbandonCheckout(attemptID); err != nil {
		t.logger.Warn(identifier, "abandon - "+err.Error())
	}
}

func (t *Terminal) confirm(prompt string) bool {
	fmt.Fprint(t.out, prompt)

	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func formatAmount(minor int64, currency string) string {
	return fmt.Sprintf("%s %d.%02d", currency, minor/constant.MinorUnitsPerMajor, minor%constant.MinorUnitsPerMajor)
}
