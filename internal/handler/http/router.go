package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/nology-tech/employee-creator-go/internal/config"
)

func NewRouter(cfg *config.Config, employeeHandler EmployeeHandler, dashboardHandler DashboardHandler, avatarHandler AvatarHandler, eventsHandler EventsHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "employee-creator"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Location"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentType("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
			r.Get("/search", employeeHandler.Search)
			r.Get("/stats", dashboardHandler.GetStats)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.GetByID)
				r.Put("/", employeeHandler.Update)
				r.Patch("/", employeeHandler.Update)
				r.Delete("/", employeeHandler.Delete)
			})
		})

		r.Route("/avatars", func(r chi.Router) {
			r.Get("/preview", avatarHandler.Preview)
			r.Post("/", avatarHandler.Generate)
		})

		r.Get("/events", eventsHandler.Stream)
	})
	return r
}
