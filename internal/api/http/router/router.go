package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/Alijeyrad/hospital_backend/config"
	"github.com/Alijeyrad/hospital_backend/internal/api/http/handler"
	"github.com/Alijeyrad/hospital_backend/internal/store"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg   *config.Config
	Store *store.Store
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Handlers
	patientH := handler.NewPatientHandler(r.p.Store)
	doctorH := handler.NewDoctorHandler(r.p.Store)
	appointmentH := handler.NewAppointmentHandler(r.p.Store)
	billH := handler.NewBillHandler(r.p.Store)
	inventoryH := handler.NewInventoryHandler(r.p.Store)
	systemH := handler.NewSystemHandler(r.p.Store)

	api := app.Group("/api/v1")

	// 3. Delegate to sub-files
	r.registerPatientRoutes(api, patientH)
	r.registerDoctorRoutes(api, doctorH)
	r.registerAppointmentRoutes(api, appointmentH)
	r.registerBillRoutes(api, billH)
	r.registerInventoryRoutes(api, inventoryH)

	api.Get("/system/status", systemH.Status)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		// Degraded mode still serves the bundled dataset, so the probe
		// only fails while the initial refresh has not finished.
		Probe: func(c fiber.Ctx) bool { return r.p.Store.Ready() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
