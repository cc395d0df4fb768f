package reservation

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/savioruz/bookease/internal/session"
	"github.com/savioruz/bookease/pkg/apiclient"
	"github.com/savioruz/bookease/pkg/constant"
	"github.com/savioruz/bookease/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen -source=orchestrator.go -destination=mock/api.go -package=mock github.com/savioruz/bookease/internal/reservation API
//go:generate go run go.uber.org/mock/mockgen -source=orchestrator.go -destination=mock/credentials.go -package=mock github.com/savioruz/bookease/internal/reservation Credentials
//go:generate go run go.uber.org/mock/mockgen -source=orchestrator.go -destination=mock/checkout.go -package=mock github.com/savioruz/bookease/internal/reservation CheckoutAdapter

var (
	ErrBusy         = errors.New("reservation: an attempt is already in progress")
	ErrPastDate     = errors.New("reservation: date is in the past")
	ErrInvalidDate  = errors.New("reservation: invalid date")
	ErrUnknownSlot  = errors.New("reservation: unknown time slot")
	ErrSlotBooked   = errors.New("reservation: time slot is already booked")
	ErrStaleAttempt = errors.New("reservation: attempt is no longer current")
)

const identifier = "reservation - %s"

// API is the part of the booking API the orchestrator drives.
type API interface {
	BookedSlots(ctx context.Context, date string) ([]string, error)
	CreateOrder(ctx context.Context, amount int64) (apiclient.Order, error)
	VerifyPayment(ctx context.Context, conf apiclient.Confirmation) (apiclient.Verification, error)
	CreateBooking(ctx context.Context, token, date, slot string) (apiclient.Booking, error)
}

type Credentials interface {
	Token() (string, error)
	Profile() (session.Profile, error)
}

type CheckoutRequest struct {
	AttemptID   string
	OrderID     string
	Amount      int64
	Currency    string
	Name        string
	Description string
	Theme       string
	CheckoutURL string
}

// Resumer is how a checkout reports back. Every call carries the attempt id it was opened with.
type Resumer interface {
	CompleteCheckout(ctx context.Context, attemptID string, conf apiclient.Confirmation) error
	AbandonCheckout(attemptID string) error
}

// CheckoutAdapter opens the provider's checkout. Open must not wait for the user.
type CheckoutAdapter interface {
	Open(ctx context.Context, req CheckoutRequest, r Resumer) error
}

type attempt struct {
	id      string
	orderID string
	amount  int64
	date    string
	slot    string
}

type Snapshot struct {
	State     State
	Date      string
	Time      string
	Booked    []string
	Grid      []SlotView
	Failure   *Failure
	AttemptID string
	Receipt   *Receipt
}

type Option func(*Orchestrator)

// Clock replaces time.Now for date checks.
func Clock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

type Orchestrator struct {
	api       API
	creds     Credentials
	checkout  CheckoutAdapter
	catalogue *Catalogue
	policy    Policy
	logger    logger.Interface
	now       func() time.Time

	mu        sync.Mutex
	state     State
	date      string
	slot      string
	booked    []string
	dateSeq   uint64
	attempt   *attempt
	failure   *Failure
	resume    State
	holdSeq   uint64
	receipt   *Receipt
	closed    bool
	observers []Observer
	queue     []Event

	emitMu sync.Mutex
}

func New(api API, creds Credentials, checkout CheckoutAdapter, catalogue *Catalogue, policy Policy, l logger.Interface, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		api:       api,
		creds:     creds,
		checkout:  checkout,
		catalogue: catalogue,
		policy:    policy,
		logger:    l,
		now:       time.Now,
		booked:    []string{},
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

func (o *Orchestrator) Subscribe(ob Observer) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.observers = append(o.observers, ob)
}

// Close stops pending timers. The machine stays readable.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.closed = true
	o.holdSeq++
}

func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	snap := Snapshot{
		State:  o.state,
		Date:   o.date,
		Time:   o.slot,
		Booked: append([]string{}, o.booked...),
		Grid:   o.catalogue.Grid(o.booked, o.slot),
	}

	if o.failure != nil {
		f := *o.failure
		snap.Failure = &f
	}

	if o.attempt != nil {
		snap.AttemptID = o.attempt.id
	}

	if o.receipt != nil {
		r := *o.receipt
		snap.Receipt = &r
	}

	return snap
}

// SelectDate makes date current and reloads its booked slots. A failed load is a Notice,
// not an error, and leaves the booked set empty.
func (o *Orchestrator) SelectDate(ctx context.Context, date string) error {
	if err := o.checkDate(date); err != nil {
		return err
	}

	o.mu.Lock()
	if o.state.InFlight() {
		o.mu.Unlock()

		return ErrBusy
	}

	o.resumeLocked()
	o.date = date
	o.slot = ""
	o.booked = []string{}
	o.dateSeq++
	seq := o.dateSeq
	o.setStateLocked(StateDateSelected)
	o.mu.Unlock()
	o.flush()

	o.refresh(ctx, date, seq)

	return nil
}

func (o *Orchestrator) SelectTime(label string) error {
	if !o.catalogue.Known(label) {
		return ErrUnknownSlot
	}

	o.mu.Lock()
	defer o.flush()
	defer o.mu.Unlock()

	if o.state.InFlight() {
		return ErrBusy
	}

	if slices.Contains(o.booked, label) {
		return ErrSlotBooked
	}

	o.resumeLocked()
	o.slot = label
	o.setStateLocked(StateTimeSelected)

	return nil
}

// Acknowledge dismisses a failure. It does nothing in any other state.
func (o *Orchestrator) Acknowledge() {
	o.mu.Lock()
	o.resumeLocked()
	o.mu.Unlock()
	o.flush()
}

// Submit runs an attempt up to the open checkout. It returns the Failure when the attempt
// ends before that, and ErrBusy without any call while another attempt owns the machine.
func (o *Orchestrator) Submit(ctx context.Context) error {
	o.mu.Lock()
	if o.state.InFlight() {
		o.mu.Unlock()

		return ErrBusy
	}

	o.resumeLocked()

	if o.date == "" || o.slot == "" {
		f := o.failLocked(StageInput, ReasonMissingSelection, nil)
		o.mu.Unlock()
		o.flush()

		return f
	}

	if _, err := o.creds.Token(); err != nil {
		f := o.failLocked(StageInput, ReasonNotLoggedIn, err)
		o.mu.Unlock()
		o.flush()

		return f
	}

	date, slot, seq := o.date, o.slot, o.dateSeq
	o.receipt = nil
	o.setStateLocked(StateOrderCreating)
	o.mu.Unlock()
	o.flush()

	if f := o.recheckSlot(ctx, date, slot, seq); f != nil {
		return f
	}

	sctx, cancel := o.stageContext(ctx)
	order, err := o.api.CreateOrder(sctx, o.policy.Amount)
	cancel()

	if err == nil && order.OrderID == "" {
		err = errors.New("order has no id")
	}

	if err != nil {
		o.logger.Error(identifier, "create order - "+err.Error())

		return o.fail(StageOrder, ReasonPaymentInit, err)
	}

	a := &attempt{
		id:      uuid.NewString(),
		orderID: order.OrderID,
		amount:  order.Amount,
		date:    date,
		slot:    slot,
	}

	if a.amount <= 0 {
		a.amount = o.policy.Amount * constant.MinorUnitsPerMajor
	}

	currency := order.Currency
	if currency == "" {
		currency = o.policy.Currency
	}

	o.mu.Lock()
	o.attempt = a
	o.setStateLocked(StateAwaitingCheckout)
	o.mu.Unlock()
	o.flush()

	req := CheckoutRequest{
		AttemptID:   a.id,
		OrderID:     a.orderID,
		Amount:      a.amount,
		Currency:    currency,
		Name:        o.policy.MerchantName,
		Description: fmt.Sprintf("Slot Booking on %s at %s", date, slot),
		Theme:       o.policy.ThemeColor,
		CheckoutURL: order.CheckoutURL,
	}

	if err := o.checkout.Open(ctx, req, o); err != nil {
		o.logger.Error(identifier, "open checkout - "+err.Error())

		o.mu.Lock()
		if o.attempt == nil || o.attempt.id != a.id || o.state != StateAwaitingCheckout {
			o.mu.Unlock()

			return nil
		}

		o.attempt = nil
		f := o.failLocked(StageOrder, ReasonPaymentInit, err)
		o.mu.Unlock()
		o.flush()

		return f
	}

	return nil
}

// CompleteCheckout resumes the attempt named by attemptID with the provider confirmation.
// It verifies the payment and commits the booking. Stale ids never touch the machine.
func (o *Orchestrator) CompleteCheckout(ctx context.Context, attemptID string, conf apiclient.Confirmation) error {
	o.mu.Lock()
	if o.attempt == nil || o.attempt.id != attemptID || o.state != StateAwaitingCheckout {
		o.mu.Unlock()

		return ErrStaleAttempt
	}

	a := *o.attempt
	o.setStateLocked(StateVerifying)
	o.mu.Unlock()
	o.flush()

	sctx, cancel := o.stageContext(ctx)
	verdict, err := o.api.VerifyPayment(sctx, conf)
	cancel()

	if err != nil || !verdict.Success {
		if err != nil {
			o.logger.Error(identifier, "verify payment - "+err.Error())
		}

		o.mu.Lock()
		o.attempt = nil
		f := o.failLocked(StageVerify, ReasonVerification, err)
		o.mu.Unlock()
		o.flush()

		return f
	}

	o.mu.Lock()
	o.setStateLocked(StateCommitting)
	o.mu.Unlock()
	o.flush()

	booking, err := o.commit(ctx, a)
	if err != nil {
		return o.commitFailed(ctx, a, err)
	}

	receipt := o.buildReceipt(a, booking, conf, verdict)

	o.mu.Lock()
	o.attempt = nil
	o.receipt = &receipt
	o.failure = nil

	if o.date == a.date {
		if o.slot == a.slot {
			o.slot = ""
		}

		if !slices.Contains(o.booked, a.slot) {
			o.booked = append(o.booked, a.slot)
		}
	}

	seq := o.dateSeq
	o.setStateLocked(StateSuccess)
	o.queue = append(o.queue,
		Notice{Message: NoticeBookingConfirmed},
		Succeeded{BookingID: booking.ID, Receipt: receipt},
	)
	o.scheduleNavigateLocked(receipt)
	o.mu.Unlock()
	o.flush()

	if o.policy.ReconcileAfterCommit {
		o.refresh(ctx, a.date, seq)
	}

	return nil
}

// AbandonCheckout is the user closing the checkout. The order is dropped and the machine
// returns to TimeSelected without a failure.
func (o *Orchestrator) AbandonCheckout(attemptID string) error {
	o.mu.Lock()
	defer o.flush()
	defer o.mu.Unlock()

	if o.attempt == nil || o.attempt.id != attemptID || o.state != StateAwaitingCheckout {
		return ErrStaleAttempt
	}

	o.attempt = nil
	o.setStateLocked(StateTimeSelected)

	return nil
}

func (o *Orchestrator) commit(ctx context.Context, a attempt) (apiclient.Booking, error) {
	token, err := o.creds.Token()
	if err != nil {
		return apiclient.Booking{}, err
	}

	sctx, cancel := o.stageContext(ctx)
	defer cancel()

	return o.api.CreateBooking(sctx, token, a.date, a.slot)
}

func (o *Orchestrator) commitFailed(ctx context.Context, a attempt, err error) error {
	o.logger.Error(identifier, "create booking - "+err.Error())

	reason := ReasonBookingFailed

	switch {
	case errors.Is(err, session.ErrNoCredential):
		reason = ReasonNotLoggedIn
	case apiclient.KindOf(err) == apiclient.KindRejected && apiclient.Message(err) != "":
		reason = apiclient.Message(err)
	case apiclient.KindOf(err) == apiclient.KindUnexpected:
		reason = apiclient.MsgUnexpectedResponse
	}

	o.mu.Lock()
	o.attempt = nil

	if o.slot == a.slot {
		o.slot = ""
	}

	seq := o.dateSeq
	f := o.failLocked(StageCommit, reason, err)
	o.mu.Unlock()
	o.flush()

	o.refresh(ctx, a.date, seq)

	return f
}

// buildReceipt takes the payment id from the booking, then the confirmation, then the
// verdict. Hosted checkouts only learn it from the verdict.
func (o *Orchestrator) buildReceipt(a attempt, booking apiclient.Booking, conf apiclient.Confirmation, verdict apiclient.Verification) Receipt {
	r := Receipt{
		Name:      booking.Username,
		Email:     booking.Email,
		Date:      a.date,
		Time:      a.slot,
		PaymentID: conf.PaymentID,
		Amount:    a.amount / constant.MinorUnitsPerMajor,
		Currency:  o.policy.Currency,
	}

	if r.PaymentID == "" {
		r.PaymentID = verdict.PaymentID
	}

	if booking.PaymentID != "" {
		r.PaymentID = booking.PaymentID
	}

	if p, err := o.creds.Profile(); err == nil {
		r.Name, r.Email = p.Name, p.Email
	}

	return r
}

// recheckSlot re-reads the booked set right before ordering. A failed read lets the
// attempt continue since the server still rejects a taken slot at commit.
func (o *Orchestrator) recheckSlot(ctx context.Context, date, slot string, seq uint64) *Failure {
	booked, err := o.querySlots(ctx, date)
	if err != nil {
		o.logger.Warn(identifier, "recheck slots - "+err.Error())

		return nil
	}

	o.mu.Lock()
	if o.dateSeq == seq {
		o.booked = booked
	}

	if !slices.Contains(booked, slot) {
		o.mu.Unlock()

		return nil
	}

	if o.slot == slot {
		o.slot = ""
	}

	f := o.failLocked(StageSlots, ReasonSlotTaken, ErrSlotBooked)
	o.mu.Unlock()
	o.flush()

	return f
}

func (o *Orchestrator) refresh(ctx context.Context, date string, seq uint64) {
	booked, err := o.querySlots(ctx, date)

	o.mu.Lock()
	if o.dateSeq != seq || o.date != date {
		o.mu.Unlock()

		return
	}

	if err != nil {
		o.logger.Warn(identifier, "load slots - "+err.Error())
		o.booked = []string{}
		o.queue = append(o.queue, Notice{Message: NoticeSlotsUnavailable})
	} else {
		o.booked = booked
	}
	o.mu.Unlock()
	o.flush()
}

func (o *Orchestrator) querySlots(ctx context.Context, date string) ([]string, error) {
	var lastErr error

	for i := 0; i <= o.policy.SlotQueryRetries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(o.policy.RetryBackoff):
			}
		}

		sctx, cancel := o.stageContext(ctx)
		booked, err := o.api.BookedSlots(sctx, date)
		cancel()

		if err == nil {
			if booked == nil {
				booked = []string{}
			}

			return booked, nil
		}

		lastErr = err

		if apiclient.KindOf(err) != apiclient.KindTransport {
			break
		}
	}

	return nil, lastErr
}

func (o *Orchestrator) fail(stage Stage, reason string, err error) *Failure {
	o.mu.Lock()
	f := o.failLocked(stage, reason, err)
	o.mu.Unlock()
	o.flush()

	return f
}

func (o *Orchestrator) failLocked(stage Stage, reason string, err error) *Failure {
	f := &Failure{Stage: stage, Reason: reason, Err: err}
	o.failure = f

	switch {
	case o.slot != "":
		o.resume = StateTimeSelected
	case o.date != "":
		o.resume = StateDateSelected
	default:
		o.resume = StateIdle
	}

	o.setStateLocked(StateFailed)
	o.queue = append(o.queue, Failed{Failure: *f})

	o.holdSeq++
	if o.policy.FailureHold > 0 && !o.closed {
		seq := o.holdSeq
		time.AfterFunc(o.policy.FailureHold, func() {
			o.mu.Lock()
			if o.holdSeq == seq {
				o.resumeLocked()
			}
			o.mu.Unlock()
			o.flush()
		})
	}

	return f
}

func (o *Orchestrator) resumeLocked() {
	if o.state != StateFailed {
		return
	}

	o.holdSeq++

	next := o.resume
	if next == StateTimeSelected && o.slot == "" {
		next = StateDateSelected
	}

	o.setStateLocked(next)
}

func (o *Orchestrator) scheduleNavigateLocked(r Receipt) {
	if o.policy.NavigateAfter <= 0 {
		o.queue = append(o.queue, Navigate{Receipt: r})

		return
	}

	if o.closed {
		return
	}

	time.AfterFunc(o.policy.NavigateAfter, func() {
		o.mu.Lock()
		if o.closed {
			o.mu.Unlock()

			return
		}

		o.queue = append(o.queue, Navigate{Receipt: r})
		o.mu.Unlock()
		o.flush()
	})
}

func (o *Orchestrator) setStateLocked(s State) {
	if o.state == s {
		return
	}

	o.queue = append(o.queue, StateChanged{From: o.state, To: s})
	o.state = s
}

// flush delivers queued events in order. Only one goroutine delivers at a time, and
// events queued by an observer are picked up by the loop already running.
func (o *Orchestrator) flush() {
	for {
		if !o.emitMu.TryLock() {
			return
		}

		o.mu.Lock()
		events := o.queue
		o.queue = nil
		observers := append([]Observer{}, o.observers...)
		o.mu.Unlock()

		for _, e := range events {
			for _, ob := range observers {
				ob.Observe(e)
			}
		}

		o.emitMu.Unlock()

		o.mu.Lock()
		pending := len(o.queue) > 0
		o.mu.Unlock()

		if !pending {
			return
		}
	}
}

func (o *Orchestrator) stageContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.policy.StageTimeout > 0 {
		return context.WithTimeout(ctx, o.policy.StageTimeout)
	}

	return context.WithCancel(ctx)
}

func (o *Orchestrator) checkDate(date string) error {
	now := o.now()

	d, err := time.ParseInLocation(constant.DateFormat, date, now.Location())
	if err != nil {
		return ErrInvalidDate
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return ErrPastDate
	}

	return nil
}
