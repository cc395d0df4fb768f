package reservation

import (
	"time"

	"github.com/savioruz/bookease/config"
)

type Policy struct {
	// Amount is the fee in major units. The checkout receives it in minor units.
	Amount       int64
	Currency     string
	MerchantName string
	ThemeColor   string

	// StageTimeout bounds each network stage. Zero means no timeout.
	StageTimeout time.Duration

	// SlotQueryRetries applies to the slot query only, and only on transport errors.
	SlotQueryRetries int
	RetryBackoff     time.Duration

	// ReconcileAfterCommit re-reads the booked slots after a successful booking.
	ReconcileAfterCommit bool

	// FailureHold is how long a failure stays on screen before the machine resumes.
	// Zero or less waits for Acknowledge or the next user action.
	FailureHold time.Duration

	// NavigateAfter delays the Navigate event after success. Zero or less emits it at once.
	NavigateAfter time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		Amount:               500,
		Currency:             "INR",
		MerchantName:         "BookEase",
		ThemeColor:           "#6366F1",
		SlotQueryRetries:     1,
		RetryBackoff:         500 * time.Millisecond,
		ReconcileAfterCommit: true,
		FailureHold:          3 * time.Second,
		NavigateAfter:        2 * time.Second,
	}
}

func PolicyFromConfig(cfg config.Client) Policy {
	return Policy{
		Amount:               cfg.Amount,
		Currency:             cfg.Currency,
		MerchantName:         cfg.MerchantName,
		ThemeColor:           cfg.ThemeColor,
		StageTimeout:         cfg.StageTimeout,
		SlotQueryRetries:     cfg.SlotQueryRetries,
		RetryBackoff:         cfg.RetryBackoff,
		ReconcileAfterCommit: cfg.Reconcile,
		FailureHold:          cfg.FailureHold,
		NavigateAfter:        cfg.NavigateAfter,
	}
}
