package apiclient

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/savioruz/bookease/pkg/constant"
	"github.com/valyala/fasthttp"
)

const _defaultTimeout = 15 * time.Second

// Client calls the booking HTTP API.
type Client struct {
	baseURL string
	http    *fasthttp.Client
	timeout time.Duration
}

type Option func(*Client)

// HTTPClient replaces the underlying fasthttp client.
func HTTPClient(c *fasthttp.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// Timeout bounds calls whose context carries no deadline. Zero disables it.
func Timeout(d time.Duration) Option {
	return func(cl *Client) {
		cl.timeout = d
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &fasthttp.Client{Name: "bookctl"},
		timeout: _defaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) BookedSlots(ctx context.Context, date string) ([]string, error) {
	var res bookedSlots
	if err := c.do(ctx, fasthttp.MethodGet, "/api/bookings/slots/"+url.PathEscape(date), "", nil, &res); err != nil {
		return nil, err
	}

	if res.Booked == nil {
		return []string{}, nil
	}

	return res.Booked, nil
}

func (c *Client) CreateOrder(ctx context.Context, amount int64) (Order, error) {
	var res Order
	err := c.do(ctx, fasthttp.MethodPost, "/api/payment/create-order", "", createOrder{Amount: amount}, &res)

	return res, err
}

// VerifyPayment reports the server's verdict. A body without "success" is an unexpected response.
func (c *Client) VerifyPayment(ctx context.Context, conf Confirmation) (Verification, error) {
	var res verifyResult
	if err := c.do(ctx, fasthttp.MethodPost, "/api/payment/verify", "", conf, &res); err != nil {
		return Verification{}, err
	}

	if res.Success == nil {
		return Verification{}, &Error{Kind: KindUnexpected, Status: fasthttp.StatusOK, Message: "missing success field"}
	}

	return Verification{Success: *res.Success, PaymentID: res.PaymentID}, nil
}

func (c *Client) CreateBooking(ctx context.Context, token, date, slot string) (Booking, error) {
	var res Booking
	err := c.do(ctx, fasthttp.MethodPost, "/api/bookings", token, createBooking{Date: date, Time: slot}, &res)

	return res, err
}

func (c *Client) UserBookings(ctx context.Context, token string) ([]Booking, error) {
	var res []Booking
	err := c.do(ctx, fasthttp.MethodGet, "/api/bookings/user", token, nil, &res)

	return res, err
}

func (c *Client) ListBookings(ctx context.Context, token string) ([]Booking, error) {
	var res []Booking
	if err := c.do(ctx, fasthttp.MethodGet, "/api/admin/bookings", token, nil, &res); err != nil {
		return nil, err
	}

	if res == nil {
		return []Booking{}, nil
	}

	return res, nil
}

func (c *Client) DeleteBooking(ctx context.Context, token, id string) error {
	return c.do(ctx, fasthttp.MethodDelete, "/api/admin/bookings/"+url.PathEscape(id), token, nil, nil)
}

func (c *Client) Signup(ctx context.Context, name, email, password string) (Auth, error) {
	var res Auth
	err := c.do(ctx, fasthttp.MethodPost, "/api/auth/signup", "", credentials{Name: name, Email: email, Password: password}, &res)

	return res, err
}

func (c *Client) Login(ctx context.Context, email, password string) (Auth, error) {
	var res Auth
	err := c.do(ctx, fasthttp.MethodPost, "/api/auth/login", "", credentials{Email: email, Password: password}, &res)

	return res, err
}

func (c *Client) Profile(ctx context.Context, token string) (User, error) {
	var res profile
	err := c.do(ctx, fasthttp.MethodGet, "/api/users/profile", token, nil, &res)

	return res.User, err
}

// FakePay asks a development server to play the payment provider for orderID.
func (c *Client) FakePay(ctx context.Context, orderID string) (Confirmation, error) {
	var res Confirmation
	err := c.do(ctx, fasthttp.MethodPost, "/api/payment/fake/"+url.PathEscape(orderID)+"/pay", "", nil, &res)

	return res, err
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	if err := ctx.Err(); err != nil {
		return &Error{Kind: KindTransport, Message: err.Error(), Err: err}
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()

	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(method)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	if token != "" {
		req.Header.Set(constant.HeaderAuthorization, constant.BearerPrefix+" "+token)
	}

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}

		req.Header.SetContentType("application/json")
		req.SetBodyRaw(payload)
	}

	if err := c.send(ctx, req, resp); err != nil {
		return &Error{Kind: KindTransport, Message: transportMessage(err), Err: err}
	}

	status := resp.StatusCode()
	raw := resp.Body()

	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		return rejection(status, raw)
	}

	if out == nil || status == fasthttp.StatusNoContent {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Kind: KindUnexpected, Status: status, Message: MsgUnexpectedResponse, Err: err}
	}

	return nil
}

func (c *Client) send(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if deadline, ok := ctx.Deadline(); ok {
		return c.http.DoDeadline(req, resp, deadline)
	}

	if c.timeout > 0 {
		return c.http.DoTimeout(req, resp, c.timeout)
	}

	return c.http.Do(req, resp)
}

func rejection(status int, raw []byte) error {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == nil {
		return &Error{Kind: KindUnexpected, Status: status, Message: MsgUnexpectedResponse, Err: err}
	}

	return &Error{Kind: KindRejected, Status: status, Message: *body.Error}
}

func transportMessage(err error) string {
	if errors.Is(err, fasthttp.ErrTimeout) {
		return "request timed out"
	}

	return err.Error()
}
