package apiclient

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/bookease/pkg/httpserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

func newTestClient(t *testing.T, routes func(app *fiber.App)) *Client {
	t.Helper()

	ln := fasthttputil.NewInmemoryListener()

	app := fiber.New(httpserver.Config(time.Second, time.Second))
	routes(app)

	go func() {
		_ = app.Listener(ln)
	}()

	t.Cleanup(func() {
		_ = app.Shutdown()
	})

	return New("http://bookease.test/", HTTPClient(&fasthttp.Client{
		Dial: func(string) (net.Conn, error) { return ln.Dial() },
	}), Timeout(time.Second))
}

func TestClient_BookedSlots(t *testing.T) {
	t.Run("success: returns booked times", func(t *testing.T) {
		c := newTestClient(t, func(app *fiber.App) {
			app.Get("/api/bookings/slots/:date", func(ctx *fiber.Ctx) error {
				assert.Equal(t, "2030-03-10", ctx.Params("date"))

				return ctx.JSON(fiber.Map{"booked": []string{"10:00 AM"}})
			})
		})

		slots, err := c.BookedSlots(context.Background(), "2030-03-10")

		require.NoError(t, err)
		assert.Equal(t, []string{"10:00 AM"}, slots)
	})

	t.Run("success: null list becomes empty", func(t *testing.T) {
		c := newTestClient(t, func(app *fiber.App) {
			app.Get("/api/bookings/slots/:date", func(ctx *fiber.Ctx) error {
				return ctx.SendString(`{"booked":null}`)
			})
		})

		slots, err := c.BookedSlots(context.Background(), "2030-03-10")

		require.NoError(t, err)
		assert.Empty(t, slots)
		assert.NotNil(t, slots)
	})

	t.Run("error: rejected with server message", func(t *testing.T) {
		c := newTestClient(t, func(app *fiber.App) {
			app.Get("/api/bookings/slots/:date", func(ctx *fiber.Ctx) error {
				return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date"})
			})
		})

		_, err := c.BookedSlots(context.Background(), "nope")

		require.Error(t, err)
		assert.Equal(t, KindRejected, KindOf(err))
		assert.Equal(t, "Invalid date", Message(err))
		assert.True(t, IsStatus(err, fiber.StatusBadRequest))
	})

	t.Run("error: html body is unexpected", func(t *testing.T) {
		c := newTestClient(t, func(app *fiber.App) {
			app.Get("/api/bookings/slots/:date", func(ctx *fiber.Ctx) error {
				return ctx.Status(fiber.StatusBadGateway).SendString("<html>bad gateway</html>")
			})
		})

		_, err := c.BookedSlots(context.Background(), "2030-03-10")

		require.Error(t, err)
		assert.Equal(t, KindUnexpected, KindOf(err))
		assert.Equal(t, MsgUnexpectedResponse, Message(err))
	})
}

func TestClient_VerifyPayment(t *testing.T) {
	t.Run("success: passes confirmation through", func(t *testing.T) {
		c := newTestClient(t, func(app *fiber.App) {
			app.Post("/api/payment/verify", func(ctx *fiber.Ctx) error {
				var conf Confirmation
				require.NoError(t, ctx.BodyParser(&conf))
				assert.Equal(t, Confirmation{OrderID: "order_1", PaymentID: "pay_1", Signature: "ab"}, conf)

				return ctx.JSON(fiber.Map{"success": true})
			})
		})

		v, err := c.VerifyPayment(context.Background(), Confirmation{OrderID: "order_1", PaymentID: "pay_1", Signature: "ab"})

		require.NoError(t, err)
		assert.True(t, v.Success)
		assert.Empty(t, v.PaymentID)
	})

	t.Run("success: surfaces payment id", func(t *testing.T) {
		c := newTestClient(t, func(app *fiber.App) {
			app.Post("/api/payment/verify", func(ctx *fiber.Ctx) error {
				return ctx.JSON(fiber.Map{"success": true, "paymentId": "inv_1"})
			})
		})

		v, err := c.VerifyPayment(context.Background(), Confirmation{OrderID: "order_1"})

		require.NoError(t, err)
		assert.Equal(t, Verification{Success: true, PaymentID: "inv_1"}, v)
	})

	t.Run("success: rejected verdict", func(t *testing.T) {
		c := newTestClient(t, func(app *fiber.App) {
			app.Post("/api/payment/verify", func(ctx *fiber.Ctx) error {
				return ctx.JSON(fiber.Map{"success": false})
			})
		})

		v, err := c.VerifyPayment(context.Background(), Confirmation{OrderID: "order_1"})

		require.NoError(t, err)
		assert.False(t, v.Success)
	})

	t.Run("error: missing success field", func(t *testing.T) {
		c := newTestClient(t, func(app *fiber.App) {
			app.Post("/api/payment/verify", func(ctx *fiber.Ctx) error {
				return ctx.JSON(fiber.Map{"status": "ok"})
			})
		})

		_, err := c.VerifyPayment(context.Background(), Confirmation{OrderID: "order_1"})

		assert.Equal(t, KindUnexpected, KindOf(err))
	})
}

func TestClient_CreateBooking(t *testing.T) {
	t.Run("success: sends bearer token", func(t *testing.T) {
		c := newTestClient(t, func(app *fiber.App) {
			app.Post("/api/bookings", func(ctx *fiber.Ctx) error {
				assert.Equal(t, "Bearer tok", ctx.Get(fiber.HeaderAuthorization))

				return ctx.Status(fiber.StatusCreated).JSON(Booking{ID: "b1", Date: "2030-03-10", Time: "10:30 AM"})
			})
		})

		b, err := c.CreateBooking(context.Background(), "tok", "2030-03-10", "10:30 AM")

		require.NoError(t, err)
		assert.Equal(t, "b1", b.ID)
		assert.Equal(t, "10:30 AM", b.Time)
	})

	t.Run("error: conflict", func(t *testing.T) {
		c := newTestClient(t, func(app *fiber.App) {
			app.Post("/api/bookings", func(ctx *fiber.Ctx) error {
				return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Slot already booked"})
			})
		})

		_, err := c.CreateBooking(context.Background(), "tok", "2030-03-10", "10:30 AM")

		assert.True(t, IsStatus(err, fiber.StatusConflict))
		assert.Equal(t, "Slot already booked", Message(err))
	})
}

func TestClient_DeleteBooking(t *testing.T) {
	c := newTestClient(t, func(app *fiber.App) {
		app.Delete("/api/admin/bookings/:id", func(ctx *fiber.Ctx) error {
			assert.Equal(t, "b1", ctx.Params("id"))

			return ctx.SendStatus(fiber.StatusNoContent)
		})
	})

	assert.NoError(t, c.DeleteBooking(context.Background(), "tok", "b1"))
}

func TestClient_Transport(t *testing.T) {
	t.Run("error: cancelled context", func(t *testing.T) {
		c := New("http://bookease.test")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.BookedSlots(ctx, "2030-03-10")

		assert.Equal(t, KindTransport, KindOf(err))
	})

	t.Run("error: deadline exceeded", func(t *testing.T) {
		c := newTestClient(t, func(app *fiber.App) {
			app.Get("/api/bookings/slots/:date", func(ctx *fiber.Ctx) error {
				time.Sleep(200 * time.Millisecond)

				return ctx.JSON(fiber.Map{"booked": []string{}})
			})
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := c.BookedSlots(ctx, "2030-03-10")

		assert.Equal(t, KindTransport, KindOf(err))
	})
}
