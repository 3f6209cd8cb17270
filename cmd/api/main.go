package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taphoa39/books-backend-go/internal/config"
	appHTTP "github.com/taphoa39/books-backend-go/internal/handler/http"
	"github.com/taphoa39/books-backend-go/internal/pkg/cron"
	"github.com/taphoa39/books-backend-go/internal/pkg/database"
	"github.com/taphoa39/books-backend-go/internal/pkg/jwt"
	"github.com/taphoa39/books-backend-go/internal/repository/postgresql"
	attendanceService "github.com/taphoa39/books-backend-go/internal/service/attendance"
	authService "github.com/taphoa39/books-backend-go/internal/service/auth"
	employeeService "github.com/taphoa39/books-backend-go/internal/service/employee"
	ledgerService "github.com/taphoa39/books-backend-go/internal/service/ledger"
	payrollService "github.com/taphoa39/books-backend-go/internal/service/payroll"
	scheduleService "github.com/taphoa39/books-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Error preparing database schema: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	scheduleSvc := scheduleService.NewScheduleService(workScheduleRepo, attendanceRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, attendanceRepo, employeeRepo)
	ledgerSvc := ledgerService.NewLedgerService(ledgerRepo)

	if err := authSvc.EnsureAdminUser(context.Background(), cfg.Admin.Username, cfg.Admin.Password); err != nil {
		log.Fatal("Error seeding admin user: ", err)
	}

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Schedule:   appHTTP.NewScheduleHandler(scheduleSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Ledger:     appHTTP.NewLedgerHandler(ledgerSvc),
	}

	router := appHTTP.NewRouter(jwtService, handlers, cfg.App.AllowedOrigins)

	scheduler := cron.NewScheduler()
	cron.NewPayrollJobs(payrollSvc).Register(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server shutdown error: ", err)
	}
}
