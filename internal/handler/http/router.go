package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/puantaj-hr/attendance-backend-go/internal/config"
	"github.com/puantaj-hr/attendance-backend-go/internal/domain/admin"
	"github.com/puantaj-hr/attendance-backend-go/internal/handler/http/middleware"
	"github.com/puantaj-hr/attendance-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	adminHandler AdminHandler,
	employeeHandler EmployeeHandler,
	departmentHandler DepartmentHandler,
	attendanceHandler AttendanceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "puantaj-attendance"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
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
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Get("/{id}", employeeHandler.GetEmployee)

				r.With(middleware.RequirePermission(admin.PermissionEmployeeCreate)).
					Post("/", employeeHandler.CreateEmployee)
				r.With(middleware.RequirePermission(admin.PermissionEmployeeUpdate)).
					Put("/{id}", employeeHandler.UpdateEmployee)
				r.With(middleware.RequirePermission(admin.PermissionEmployeeDelete)).
					Delete("/{id}", employeeHandler.DeleteEmployee)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", departmentHandler.ListDepartments)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(admin.PermissionDepartmentManage))
					r.Post("/", departmentHandler.CreateDepartment)
					r.Delete("/{id}", departmentHandler.DeleteDepartment)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendanceHandler.RecordPunch)

				r.With(middleware.RequirePermission(admin.PermissionAttendanceView)).
					Get("/", attendanceHandler.ListPunches)
				r.With(middleware.RequirePermission(admin.PermissionAttendanceManual)).
					Post("/manual", attendanceHandler.RecordManualPunch)
				r.With(middleware.RequirePermission(admin.PermissionAttendanceAnalyze)).
					Get("/analysis", attendanceHandler.Analyze)
			})

			// Owner only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireOwner)
				r.Get("/", adminHandler.ListAdmins)
				r.Post("/", adminHandler.CreateAdmin)
				r.Put("/{id}/role", adminHandler.UpdateAdminRole)
				r.Delete("/{id}", adminHandler.DeleteAdmin)
			})
		})
	})
	return r
}
