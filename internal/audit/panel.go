package audit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/savioruz/bookease/pkg/apiclient"
	"github.com/savioruz/bookease/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen -source=panel.go -destination=mock/api.go -package=mock github.com/savioruz/bookease/internal/audit API

const (
	MsgNonJSONResponse = "Received non-JSON response from server"
	MsgDeleteFailed    = "Failed to delete booking"
	MsgRefreshFailed   = "Booking deleted, but the booking list could not be refreshed"

	identifier = "audit - %s"
)

var (
	ErrNotLoggedIn = errors.New("audit: admin login required")
	ErrDeclined    = errors.New("audit: delete not confirmed")

	// ErrRefreshFailed means the delete went through and only the reload after it failed.
	ErrRefreshFailed = errors.New("audit: booking deleted, reload failed")
)

type API interface {
	ListBookings(ctx context.Context, token string) ([]apiclient.Booking, error)
	DeleteBooking(ctx context.Context, token, id string) error
}

type TokenSource interface {
	Token() (string, error)
}

type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Panel is the admin view over every booking. The full list is only ever replaced
// by a fresh read from the server.
type Panel struct {
	api     API
	tokens  TokenSource
	confirm Confirmer
	logger  logger.Interface

	mu       sync.RWMutex
	bookings []apiclient.Booking
	query    string
}

func New(api API, tokens TokenSource, confirm Confirmer, l logger.Interface) *Panel {
	return &Panel{
		api:      api,
		tokens:   tokens,
		confirm:  confirm,
		logger:   l,
		bookings: []apiclient.Booking{},
	}
}

func (p *Panel) Load(ctx context.Context) error {
	token, err := p.tokens.Token()
	if err != nil {
		return ErrNotLoggedIn
	}

	bookings, err := p.api.ListBookings(ctx, token)
	if err != nil {
		p.logger.Error(identifier, "load bookings - "+err.Error())

		return errors.New(failureMessage(err, "Failed to load bookings"))
	}

	p.mu.Lock()
	p.bookings = bookings
	p.mu.Unlock()

	return nil
}

// Search sets the filter and returns what it lets through. The loaded list is untouched.
func (p *Panel) Search(query string) []apiclient.Booking {
	p.mu.Lock()
	p.query = query
	p.mu.Unlock()

	return p.Visible()
}

// Visible is every loaded booking whose username or email contains the query, ignoring case.
func (p *Panel) Visible() []apiclient.Booking {
	p.mu.RLock()
	defer p.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(p.query))
	out := make([]apiclient.Booking, 0, len(p.bookings))

	for _, b := range p.bookings {
		if q == "" ||
			strings.Contains(strings.ToLower(b.Username), q) ||
			strings.Contains(strings.ToLower(b.Email), q) {
			out = append(out, b)
		}
	}

	return out
}

func (p *Panel) All() []apiclient.Booking {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return append([]apiclient.Booking{}, p.bookings...)
}

// Delete removes id after the user confirms, then reloads the whole list. A failed reload
// returns ErrRefreshFailed since the booking is already gone.
func (p *Panel) Delete(ctx context.Context, id string) error {
	if !p.confirm.Confirm(fmt.Sprintf("Are you sure you want to delete booking ID: %s?", id)) {
		return ErrDeclined
	}

	token, err := p.tokens.Token()
	if err != nil {
		return ErrNotLoggedIn
	}

	if err := p.api.DeleteBooking(ctx, token, id); err != nil {
		p.logger.Error(identifier, "delete booking - "+err.Error())

		return errors.New(failureMessage(err, MsgDeleteFailed))
	}

	if err := p.Load(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	return nil
}

func failureMessage(err error, fallback string) string {
	switch apiclient.KindOf(err) {
	case apiclient.KindRejected:
		if msg := apiclient.Message(err); msg != "" {
			return msg
		}

		return fallback
	case apiclient.KindUnexpected:
		return MsgNonJSONResponse
	default:
		return fallback
	}
}
