package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/savioruz/bookease/pkg/constant"
)

// Signature issues orders locally and verifies HMAC-SHA256 signatures over "orderId|paymentId".
type Signature struct {
	secret []byte
}

func NewSignature(secret string) *Signature {
	return &Signature{secret: []byte(secret)}
}

func (s *Signature) Name() string {
	return constant.PaymentGatewaySignature
}

func (s *Signature) CreateOrder(_ context.Context, req OrderRequest) (Order, error) {
	return Order{ProviderRef: req.OrderID}, nil
}

func (s *Signature) Verify(_ context.Context, c Confirmation, _ string) (Verdict, error) {
	if c.OrderID == "" || c.PaymentID == "" || c.Signature == "" {
		return Verdict{}, nil
	}

	got, err := hex.DecodeString(c.Signature)
	if err != nil {
		return Verdict{}, nil
	}

	if !hmac.Equal(got, s.mac(c.OrderID, c.PaymentID)) {
		return Verdict{}, nil
	}

	return Verdict{Paid: true, PaymentID: c.PaymentID}, nil
}

// Sign produces the signature a provider would attach to a successful payment.
func (s *Signature) Sign(orderID, paymentID string) string {
	return hex.EncodeToString(s.mac(orderID, paymentID))
}

func (s *Signature) mac(orderID, paymentID string) []byte {
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(orderID + "|" + paymentID))

	return h.Sum(nil)
}
