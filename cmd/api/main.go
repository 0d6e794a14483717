package main

import (
	"fmt"
	"net/http"

	"github.com/ngochidung2111/DACN-BE/internal/config"
	appHTTP "github.com/ngochidung2111/DACN-BE/internal/handler/http"
	"github.com/ngochidung2111/DACN-BE/internal/pkg/clock"
	"github.com/ngochidung2111/DACN-BE/internal/pkg/database"
	"github.com/ngochidung2111/DACN-BE/internal/pkg/jwt"
	"github.com/ngochidung2111/DACN-BE/internal/repository/postgresql"
	attendanceService "github.com/ngochidung2111/DACN-BE/internal/service/attendance"
	serviceAuth "github.com/ngochidung2111/DACN-BE/internal/service/auth"
	bookingService "github.com/ngochidung2111/DACN-BE/internal/service/booking"
	employeeService "github.com/ngochidung2111/DACN-BE/internal/service/employee"
	payrollService "github.com/ngochidung2111/DACN-BE/internal/service/payroll"
	roomService "github.com/ngochidung2111/DACN-BE/internal/service/room"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	roomRepo := postgresql.NewRoomRepository(db)
	bookingRepo := postgresql.NewBookingRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	txManager := postgresql.NewTxManager(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	clk := clock.System()

	authSvc := serviceAuth.NewAuthService(employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	roomSvc := roomService.NewRoomService(roomRepo)
	bookingSvc := bookingService.NewBookingService(txManager, bookingRepo, roomRepo, employeeRepo, clk)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, clk)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, attendanceRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	roomHandler := appHTTP.NewRoomHandler(roomSvc)
	bookingHandler := appHTTP.NewBookingHandler(bookingSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		employeeHandler,
		roomHandler,
		bookingHandler,
		attendanceHandler,
		payrollHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
