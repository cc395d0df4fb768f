package dto

type CreateOrderRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0" example:"500"`
}

// VerifyPaymentRequest is the confirmation the checkout produced.
type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId" validate:"required" example:"order_4f6c1b2e9a7d4c3b"`
	PaymentID string `json:"paymentId" example:"pay_8e2d7c6b5a4f3e1d"`
	Signature string `json:"signature" example:"3b1f..."`
}
