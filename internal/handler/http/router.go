package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hr-suite/hr-admin-backend-go/internal/config"
	"github.com/hr-suite/hr-admin-backend-go/internal/handler/http/middleware"
	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	Master      MasterHandler
	Employee    EmployeeHandler
	Attendance  AttendanceHandler
	Salary      SalaryHandler
	Leave       LeaveHandler
	Performance PerformanceHandler
	Dashboard   DashboardHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-admin-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Master.ListDepartments)
				r.Get("/{id}", h.Master.GetDepartment)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Master.CreateDepartment)
					r.Put("/{id}", h.Master.UpdateDepartment)
					r.Delete("/{id}", h.Master.DeleteDepartment)
				})
			})

			r.Route("/positions", func(r chi.Router) {
				r.Get("/", h.Master.ListPositions)
				r.Get("/{id}", h.Master.GetPosition)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Master.CreatePosition)
					r.Put("/{id}", h.Master.UpdatePosition)
					r.Delete("/{id}", h.Master.DeletePosition)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", h.Master.ListShifts)
				r.Get("/{id}", h.Master.GetShift)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Master.CreateShift)
					r.Put("/{id}", h.Master.UpdateShift)
					r.Delete("/{id}", h.Master.DeleteShift)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/sessions", h.Attendance.List)
				r.Get("/summary", h.Attendance.MonthlySummary)
			})

			r.Route("/salary", func(r chi.Router) {
				r.Get("/{employeeID}/profile", h.Salary.Profile)
				r.Get("/{employeeID}/history", h.Salary.History)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/adjustments", h.Salary.AddAdjustment)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/", h.Leave.Create)
				r.Get("/", h.Leave.List)
				r.Get("/{employeeID}/balance", h.Leave.Balance)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Patch("/{id}/status", h.Leave.UpdateStatus)
				})
			})

			r.Route("/performance", func(r chi.Router) {
				r.Get("/reviews", h.Performance.ListReviews)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/reviews", h.Performance.AddReview)
					r.Get("/stats", h.Performance.Stats)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/overview", h.Dashboard.Overview)
			})
		})
	})

	return r
}
