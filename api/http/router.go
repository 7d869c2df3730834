package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/taskboard/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. Auth routes are
// public; task routes sit behind the JWT middleware.
func Register(app *fiber.App, auth *handlers.AuthHandler, tasks *handlers.TaskHandler, health *handlers.HealthHandler, authMW fiber.Handler) {
	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	u := api.Group("/user")
	u.Post("/register", auth.Register)
	u.Post("/login", auth.Login)

	tg := api.Group("/tasks", authMW)
	tg.Post("/", tasks.Create)
	tg.Get("/", tasks.List)
	tg.Get("/:id", tasks.GetByID)
	tg.Patch("/:id", tasks.Update)
	tg.Delete("/:id", tasks.Delete)
}
