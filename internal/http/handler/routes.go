package handler

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"restaurantform/internal/form"
	"restaurantform/internal/metrics"
	"restaurantform/internal/service"
	"restaurantform/internal/view"
)

// Dependencies are the components the HTTP layer is wired to.
type Dependencies struct {
	Restaurants service.RestaurantService
	Sessions    *form.Sessions
	Constraints *form.Constraints
	Renderer    *view.Renderer
	Container   *view.Container
	// Metrics may be nil.
	Metrics *metrics.Restaurants
	// Gatherer serves /metrics; nil leaves the endpoint out.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, deps Dependencies) {
	app.Use("/static", filesystem.New(filesystem.Config{
		Root: http.FS(view.Static()),
	}))

	app.Get("/health", HealthCheck(deps.Restaurants))
	app.Get("/healthz", LivenessProbe())

	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Page
	app.Get("/", ShowPage(deps))
	app.Get("/restaurants", RestaurantsFragment(deps.Container))
	app.Post("/restaurants", SubmitRestaurantForm(deps))

	// JSON API
	api := app.Group("/api")
	api.Get("/restaurants", ListRestaurants(deps.Restaurants))
	api.Post("/restaurants", CreateRestaurant(deps))
	api.Get("/draft", GetDraft(deps.Sessions))
	api.Patch("/draft", UpdateDraftField(deps))
	api.Post("/draft/submit", SubmitDraft(deps))
}

// HealthCheck reports readiness along with the current list size.
func HealthCheck(svc service.RestaurantService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if svc == nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":      "healthy",
			"restaurants": len(svc.List(c.UserContext())),
		})
	}
}

// LivenessProbe always answers 200.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
