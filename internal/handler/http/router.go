package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/taphoa39/books-backend-go/internal/handler/http/middleware"
	"github.com/taphoa39/books-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Schedule   ScheduleHandler
	Payroll    PayrollHandler
	Ledger     LedgerHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "taphoa39-books"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
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
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/auth/change-password", h.Auth.ChangePassword)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Route("/{maNhanVien}", func(r chi.Router) {
					r.Get("/", h.Employee.Get)
					r.Put("/", h.Employee.Update)
					// Soft delete: stamps ngayKetThuc, keeps the row
					r.Delete("/", h.Employee.Terminate)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Post("/", h.Attendance.Save)
				r.Post("/batch", h.Attendance.SaveBatch)
				r.Put("/{id}", h.Attendance.Save)
				r.Delete("/{id}", h.Attendance.Delete)
			})

			r.Route("/work-schedules", func(r chi.Router) {
				r.Get("/", h.Schedule.ListRange)
				r.Put("/", h.Schedule.Save)
				r.Post("/generate-attendance", h.Schedule.GenerateAttendance)
				r.Route("/{weekStartDate}", func(r chi.Router) {
					r.Get("/", h.Schedule.GetWeek)
					r.Delete("/", h.Schedule.Delete)
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Get("/", h.Payroll.ListByPeriod)
				r.Post("/", h.Payroll.Save)
				r.Post("/batch", h.Payroll.SaveBatch)
				r.Post("/reconcile", h.Payroll.Reconcile)
				r.Get("/summary", h.Payroll.Summary)
				r.Route("/{id}", func(r chi.Router) {
					r.Put("/", h.Payroll.Save)
					r.Delete("/", h.Payroll.Delete)
					r.Get("/payslip", h.Payroll.Payslip)
				})
			})

			r.Route("/ledgers/{book}", func(r chi.Router) {
				r.Get("/", h.Ledger.GetBook)
				r.Post("/", h.Ledger.SaveEntry)
				r.Get("/opening-balance", h.Ledger.GetOpeningBalance)
				r.Put("/opening-balance", h.Ledger.SetOpeningBalance)
				r.Put("/{id}", h.Ledger.SaveEntry)
				r.Delete("/{id}", h.Ledger.DeleteEntry)
			})
		})
	})
	return r
}
