package httpserver

import (
	"net"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

func TestServer_StartShutdown(t *testing.T) {
	ln := fasthttputil.NewInmemoryListener()

	app := fiber.New(Config(time.Second, time.Second))
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	srv := New(App(app), Listener(ln), ShutdownTimeout(time.Second))
	srv.Start()

	client := &fasthttp.Client{
		Dial: func(string) (net.Conn, error) { return ln.Dial() },
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI("http://bookease.test/healthz")

	var err error
	for i := 0; i < 20; i++ {
		if err = client.DoTimeout(req, resp, time.Second); err == nil {
			break
		}

		time.Sleep(10 * time.Millisecond)
	}

	require.NoError(t, err)
	assert.Equal(t, "ok", string(resp.Body()))

	require.NoError(t, srv.Shutdown())
}

func TestNew_Defaults(t *testing.T) {
	srv := New(Port("8080"))

	assert.NotNil(t, srv.App)
	assert.Equal(t, ":8080", srv.address)
}
