package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/ngochidung2111/DACN-BE/internal/handler/http/middleware"
	"github.com/ngochidung2111/DACN-BE/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	roomHandler RoomHandler,
	bookingHandler BookingHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "office-ops"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", employeeHandler.GetMe)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", employeeHandler.List)
					r.Get("/{id}", employeeHandler.Get)
					r.Put("/{id}", employeeHandler.Update)
					r.Post("/{id}/payroll/generate", payrollHandler.Generate)
				})
			})

			r.Route("/rooms", func(r chi.Router) {
				r.Get("/", roomHandler.List)
				r.Get("/{id}", roomHandler.Get)
				r.Get("/{id}/availability", bookingHandler.CheckAvailability)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", roomHandler.Create)
					r.Put("/{id}", roomHandler.Update)
					r.Delete("/{id}", roomHandler.Delete)
				})
			})

			r.Route("/bookings", func(r chi.Router) {
				r.Post("/", bookingHandler.Create)
				r.Get("/", bookingHandler.List)
				r.Get("/my", bookingHandler.History)
				r.Get("/upcoming", bookingHandler.Upcoming)
				r.Get("/{id}", bookingHandler.Get)
				r.Put("/{id}", bookingHandler.Update)
				r.Delete("/{id}", bookingHandler.Delete)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/my", attendanceHandler.GetMyAttendance)
				r.Get("/my/daily-hours", attendanceHandler.GetDailyWorkingHours)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my", payrollHandler.GetMyPayroll)
			})
		})
	})
	return r
}
