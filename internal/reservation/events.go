package reservation

type Event interface {
	event()
}

type StateChanged struct {
	From State
	To   State
}

// Notice is a non-blocking message for the user.
type Notice struct {
	Message string
}

type Failed struct {
	Failure Failure
}

type Succeeded struct {
	BookingID string
	Receipt   Receipt
}

// Navigate asks the view to move to the confirmation screen.
type Navigate struct {
	Receipt Receipt
}

func (StateChanged) event() {}
func (Notice) event()       {}
func (Failed) event()       {}
func (Succeeded) event()    {}
func (Navigate) event()     {}

type Observer interface {
	Observe(e Event)
}

type ObserverFunc func(e Event)

func (f ObserverFunc) Observe(e Event) {
	f(e)
}
