// Package metrics expone contadores Prometheus de HTTP y de negocio con un registro propio.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los colectores de la API. Cada instancia tiene su propio registro,
// así varias instancias (p. ej. en tests) no chocan en el registro global.
type Metrics struct {
	reg *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	ordenOperaciones    *prometheus.CounterVec
	precioNoConfigurado prometheus.Counter
	loginIntentos       *prometheus.CounterVec
}

// New registra los colectores con el prefijo dado (p. ej. "pos_api").
func New(prefix string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		httpRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total de solicitudes HTTP",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duración de las solicitudes HTTP en segundos",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		ordenOperaciones: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_orden_operaciones_total",
				Help: "Operaciones confirmadas sobre órdenes e ítems",
			},
			[]string{"operacion"},
		),
		precioNoConfigurado: f.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_precio_no_configurado_total",
				Help: "Ítems rechazados porque el artículo no tiene lista de precios",
			},
		),
		loginIntentos: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_login_intentos_total",
				Help: "Intentos de inicio de sesión por resultado",
			},
			[]string{"resultado"},
		),
	}
}

// OperacionOrden incrementa el contador de la operación (crear_orden, agregar_item...).
func (m *Metrics) OperacionOrden(op string) {
	m.ordenOperaciones.WithLabelValues(op).Inc()
}

// PrecioNoConfigurado cuenta un ítem rechazado por falta de precio.
func (m *Metrics) PrecioNoConfigurado() {
	m.precioNoConfigurado.Inc()
}

// LoginIntento cuenta un intento de login ("ok", "credenciales", "inactivo").
func (m *Metrics) LoginIntento(resultado string) {
	m.loginIntentos.WithLabelValues(resultado).Inc()
}

// Middleware mide cada solicitud. Usa la ruta registrada (no la URL) para acotar la cardinalidad.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		path := c.Route().Path
		if path == "" {
			path = "desconocida"
		}
		labels := []string{c.Method(), path, strconv.Itoa(status)}
		m.httpRequestsTotal.WithLabelValues(labels...).Inc()
		m.httpRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler expone el registro en formato de texto de Prometheus (GET /metrics).
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg}))
}

// Registry devuelve el registro subyacente.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}
