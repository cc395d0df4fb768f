package apiclient

type Order struct {
	OrderID     string `json:"orderId"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	CheckoutURL string `json:"checkoutUrl,omitempty"`
}

// Confirmation is what a checkout yields on success. It is passed to VerifyPayment unmodified.
type Confirmation struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

// Verification is the server's verdict. PaymentID is the provider's id for the payment
// and may be empty when the server does not report one.
type Verification struct {
	Success   bool
	PaymentID string
}

type Booking struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	Username        string `json:"username,omitempty"`
	Email           string `json:"email,omitempty"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	ServiceID       string `json:"service_id"`
	PaymentID       string `json:"payment_id,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Joined string `json:"joined,omitempty"`
}

type Auth struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type bookedSlots struct {
	Booked []string `json:"booked"`
}

type createOrder struct {
	Amount int64 `json:"amount"`
}

type verifyResult struct {
	Success   *bool  `json:"success"`
	PaymentID string `json:"paymentId"`
}

type createBooking struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type credentials struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profile struct {
	User User `json:"user"`
}

type errorBody struct {
	Error *string `json:"error"`
}
