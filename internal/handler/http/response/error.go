package response

import (
	"errors"
	"net/http"

	"github.com/hr-suite/hr-admin-backend-go/internal/domain/attendance"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/auth"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/employee"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/leave"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/master/department"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/master/position"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/performance"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/salary"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/shift"
	"github.com/hr-suite/hr-admin-backend-go/internal/domain/user"
	"github.com/hr-suite/hr-admin-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrOpenSessionExists):
		Conflict(w, "An open attendance session already exists")
	case errors.Is(err, attendance.ErrNoOpenSession):
		BadRequest(w, "No open attendance session to close", nil)
	case errors.Is(err, attendance.ErrNoShiftAssigned):
		BadRequest(w, "Employee has no shift assigned", nil)
	case errors.Is(err, attendance.ErrInvalidPeriod):
		BadRequest(w, "Invalid summary period", nil)
	case errors.Is(err, attendance.ErrSessionNotFound):
		NotFound(w, "Attendance session not found")

	// Master data errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftNameExists):
		Conflict(w, "Shift name already exists")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, position.ErrPositionTitleExists):
		Conflict(w, "Position title already exists in the department")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Salary domain errors
	case errors.Is(err, salary.ErrAdjustmentNotFound):
		NotFound(w, "Salary adjustment not found")
	case errors.Is(err, salary.ErrInvalidChangeType):
		BadRequest(w, "change_type must be allowance or bonus", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrEndBeforeStart):
		BadRequest(w, "end_date must not be before start_date", nil)
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient annual leave balance", nil)

	// Performance domain errors
	case errors.Is(err, performance.ErrReviewNotFound):
		NotFound(w, "Performance review not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
