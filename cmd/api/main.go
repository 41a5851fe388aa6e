package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/puantaj-hr/attendance-backend-go/internal/config"
	appHTTP "github.com/puantaj-hr/attendance-backend-go/internal/handler/http"
	"github.com/puantaj-hr/attendance-backend-go/internal/pkg/database"
	"github.com/puantaj-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/puantaj-hr/attendance-backend-go/internal/pkg/oauth"
	"github.com/puantaj-hr/attendance-backend-go/internal/repository/postgresql"
	adminService "github.com/puantaj-hr/attendance-backend-go/internal/service/admin"
	attendanceService "github.com/puantaj-hr/attendance-backend-go/internal/service/attendance"
	authService "github.com/puantaj-hr/attendance-backend-go/internal/service/auth"
	departmentService "github.com/puantaj-hr/attendance-backend-go/internal/service/department"
	employeeService "github.com/puantaj-hr/attendance-backend-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, database.PoolOptions{
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	if err := postgresql.Migrate(context.Background(), db); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	adminRepo := postgresql.NewAdminRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	analyzer, err := attendanceService.NewAnalyzer(attendanceService.Policy{
		WorkStart:         cfg.Analysis.WorkStart,
		WorkEnd:           cfg.Analysis.WorkEnd,
		GraceEnd:          cfg.Analysis.GraceEnd,
		OvertimeEnd:       cfg.Analysis.OvertimeEnd,
		MonthlyLimitHours: cfg.Analysis.MonthlyLimitHours,
	})
	if err != nil {
		log.Fatal("Invalid analysis policy: ", err)
	}

	authSvc := authService.NewAuthService(db, adminRepo, jwtService, jwtRepo)
	adminSvc := adminService.NewAdminService(adminRepo, cfg.App.OwnerEmail)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	attendanceSvc := attendanceService.NewAttendanceService(punchRepo, analyzer)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL, cfg.GoogleLoginEnabled())
	adminHandler := appHTTP.NewAdminHandler(adminSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		adminHandler,
		employeeHandler,
		departmentHandler,
		attendanceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
