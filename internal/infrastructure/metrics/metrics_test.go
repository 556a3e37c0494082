package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContadoresDeNegocio(t *testing.T) {
	m := New("test")
	m.OperacionOrden("agregar_item")
	m.OperacionOrden("agregar_item")
	m.PrecioNoConfigurado()
	m.LoginIntento("ok")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ordenOperaciones.WithLabelValues("agregar_item")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.precioNoConfigurado))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loginIntentos.WithLabelValues("ok")))
}

func TestInstanciasIndependientes(t *testing.T) {
	assert.NotPanics(t, func() {
		New("dup")
		New("dup")
	})
}

func TestMiddlewareYHandler(t *testing.T) {
	m := New("test")
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/metrics", m.Handler())
	app.Get("/ordenes/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest("GET", "/ordenes/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/ordenes/:id", "204")))

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "test_http_requests_total")
}
