package constant

import (
	"errors"
	"time"
)

const (
	CacheParentKey = "bookease"
	CacheSlotsKey  = "slots"
)

const (
	RequestParamID   = "id"
	RequestParamDate = "date"

	RequestParamOrderID = "orderId"

	RequestValidateUUID = "required,uuid"
	RequestValidateDate = "required,datetime=2006-01-02"
)

const (
	BookingDefaultDurationMinutes = 30
	BookingDefaultServiceID       = "1"
)

const (
	OrderStatusCreated = "created"
	OrderStatusPaid    = "paid"
	OrderStatusExpired = "expired"
)

const (
	PaymentCurrencyINR = "INR"

	PaymentGatewaySignature = "signature"
	PaymentGatewayXendit    = "xendit"

	PaymentOrderPrefix   = "order_"
	PaymentPaymentPrefix = "pay_"

	// MinorUnitsPerMajor converts the configured fee to the checkout amount.
	MinorUnitsPerMajor = 100
)

const (
	FullDateFormat = time.RFC3339
	DateFormat     = "2006-01-02"
	SlotFormat     = "03:04 PM"
)

const (
	UserRoleAdmin = "admin"
	UserRoleUser  = "user"
)

const (
	JwtFieldUser  = "user_id"
	JwtFieldEmail = "email"
	JwtFieldLevel = "level"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"

	BearerPrefix = "Bearer"
)

var (
	ErrInvalidContextUserType = errors.New("invalid user type in context")
)
