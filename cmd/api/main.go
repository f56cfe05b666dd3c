package main

import (
	"fmt"
	"net/http"

	"github.com/hr-suite/hr-admin-backend-go/internal/config"
	appHTTP "github.com/hr-suite/hr-admin-backend-go/internal/handler/http"
	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/database"
	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/jwt"
	"github.com/hr-suite/hr-admin-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hr-suite/hr-admin-backend-go/internal/service/attendance"
	authService "github.com/hr-suite/hr-admin-backend-go/internal/service/auth"
	dashboardService "github.com/hr-suite/hr-admin-backend-go/internal/service/dashboard"
	employeeService "github.com/hr-suite/hr-admin-backend-go/internal/service/employee"
	leaveService "github.com/hr-suite/hr-admin-backend-go/internal/service/leave"
	"github.com/hr-suite/hr-admin-backend-go/internal/service/master"
	performanceService "github.com/hr-suite/hr-admin-backend-go/internal/service/performance"
	salaryService "github.com/hr-suite/hr-admin-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	// Repositories
	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	// Services
	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := authService.NewAuthService(userRepo, employeeRepo, jwtSvc)
	masterSvc := master.NewMasterService(departmentRepo, positionRepo, shiftRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, positionRepo, shiftRepo)
	attendanceSvc := attendanceService.NewSessionService(sessionRepo, employeeRepo, shiftRepo)
	salarySvc := salaryService.NewSalaryService(adjustmentRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	performanceSvc := performanceService.NewPerformanceService(reviewRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	// Handlers
	handlers := appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(authSvc, jwtSvc),
		Master:      appHTTP.NewMasterHandler(masterSvc),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Salary:      appHTTP.NewSalaryHandler(salarySvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc),
		Performance: appHTTP.NewPerformanceHandler(performanceSvc),
		Dashboard:   appHTTP.NewDashboardHandler(dashboardSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtSvc, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on port", cfg.App.Port)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
