package reservation

type State int

const (
	StateIdle State = iota
	StateDateSelected
	StateTimeSelected
	StateOrderCreating
	StateAwaitingCheckout
	StateVerifying
	StateCommitting
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDateSelected:
		return "date_selected"
	case StateTimeSelected:
		return "time_selected"
	case StateOrderCreating:
		return "order_creating"
	case StateAwaitingCheckout:
		return "awaiting_checkout"
	case StateVerifying:
		return "verifying"
	case StateCommitting:
		return "committing"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// InFlight reports whether an attempt owns the machine in this state.
func (s State) InFlight() bool {
	return s >= StateOrderCreating && s <= StateCommitting
}

type Stage string

const (
	StageInput  Stage = "input"
	StageSlots  Stage = "slots"
	StageOrder  Stage = "order"
	StageVerify Stage = "verify"
	StageCommit Stage = "commit"
)

const (
	ReasonMissingSelection = "Please select a date and time slot"
	ReasonNotLoggedIn      = "Please login to book a slot"
	ReasonPaymentInit      = "payment init error"
	ReasonVerification     = "Payment verification failed!"
	ReasonBookingFailed    = "Booking failed"
	ReasonSlotTaken        = "Slot already booked"
	NoticeSlotsUnavailable = "Could not load booked slots."
	NoticeBookingConfirmed = "Booking Confirmed!"
)

// Failure is why an attempt ended. It is returned as an error and kept for the view.
type Failure struct {
	Stage  Stage
	Reason string
	Err    error
}

func (f *Failure) Error() string {
	return f.Reason
}

func (f *Failure) Unwrap() error {
	return f.Err
}
