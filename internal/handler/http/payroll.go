package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ngochidung2111/DACN-BE/internal/domain/payroll"
	"github.com/ngochidung2111/DACN-BE/internal/handler/http/middleware"
	"github.com/ngochidung2111/DACN-BE/internal/handler/http/response"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	GetMyPayroll(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// Generate implements PayrollHandler. Admin only; regenerating an
// existing period overwrites the computed amounts in place.
func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	year, month, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.GenerateMonthlyPayroll(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll generated successfully", result)
}

// GetMyPayroll implements PayrollHandler.
func (h *payrollHandlerImpl) GetMyPayroll(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parsePeriod(w, r)
	if !ok {
		return
	}

	result, err := h.payrollService.GetMyPayrollByMonth(r.Context(), middleware.EmployeeID(r), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result == nil {
		response.NotFound(w, "Payroll record not found")
		return
	}

	response.Success(w, result)
}

func parsePeriod(w http.ResponseWriter, r *http.Request) (year, month int, ok bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return 0, 0, false
	}

	month, err = strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "month must be a number", nil)
		return 0, 0, false
	}

	return year, month, true
}
