package errors

import (
	"fmt"
	"net/http"
)

// Error code constants. Errors carry code + message; field-level details ride
// in FieldErrors so forms can bind failures to inputs.

// Customer error codes.
const (
	CodeCustomerNotFound    = "CUSTOMER_NOT_FOUND"
	CodeCustomerEmailExists = "CUSTOMER_EMAIL_ALREADY_EXISTS"
	CodeCustomerHasVehicles = "CUSTOMER_HAS_VEHICLES"
)

// Vehicle error codes.
const (
	CodeVehicleNotFound  = "VEHICLE_NOT_FOUND"
	CodeVehicleVINExists = "VEHICLE_VIN_ALREADY_EXISTS"
)

// Employee error codes.
const (
	CodeEmployeeNotFound        = "EMPLOYEE_NOT_FOUND"
	CodeEmployeeEmailExists     = "EMPLOYEE_EMAIL_ALREADY_EXISTS"
	CodeEmployeeHasAppointments = "EMPLOYEE_HAS_APPOINTMENTS"
)

// Appointment and catalog error codes.
const (
	CodeAppointmentNotFound = "APPOINTMENT_NOT_FOUND"
	CodeServiceNotFound     = "SERVICE_NOT_FOUND"
	CodeServiceNameExists   = "SERVICE_NAME_ALREADY_EXISTS"
	CodeServiceInactive     = "SERVICE_INACTIVE"
	CodeInvalidStatus       = "INVALID_STATUS"
)

// Parts-tracking error codes.
const (
	CodeIssueNotFound         = "ISSUE_NOT_FOUND"
	CodePartNotFound          = "PART_NOT_FOUND"
	CodeServiceRecordNotFound = "SERVICE_RECORD_NOT_FOUND"
)

// Auth error codes.
const (
	CodeInvalidEmailOrPassword = "INVALID_EMAIL_OR_PASSWORD"
	CodeEmailNotVerified       = "EMAIL_NOT_VERIFIED"
	CodeEmailExists            = "EMAIL_ALREADY_EXISTS"
	CodeInvalidResetToken      = "INVALID_RESET_TOKEN"
	CodeAccountDisabled        = "ACCOUNT_DISABLED"
)

// Validation error codes.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInvalidRequest   = "INVALID_REQUEST"
)

// Notification error codes.
const (
	CodeNotificationNotFound = "NOTIFICATION_NOT_FOUND"
)

// Convenience constructors for the most common shapes.

// ErrCustomerNotFoundf creates a customer not found error.
func ErrCustomerNotFoundf(id string) *AppError {
	return NotFound(CodeCustomerNotFound, fmt.Sprintf("customer %s not found", id))
}

// ErrVehicleNotFoundf creates a vehicle not found error.
func ErrVehicleNotFoundf(id string) *AppError {
	return NotFound(CodeVehicleNotFound, fmt.Sprintf("vehicle %s not found", id))
}

// ErrEmployeeNotFoundf creates an employee not found error.
func ErrEmployeeNotFoundf(id string) *AppError {
	return NotFound(CodeEmployeeNotFound, fmt.Sprintf("employee %s not found", id))
}

// ErrAppointmentNotFoundf creates an appointment not found error.
func ErrAppointmentNotFoundf(id string) *AppError {
	return NotFound(CodeAppointmentNotFound, fmt.Sprintf("appointment %s not found", id))
}

// ErrInvalidCredentials creates the indistinguishable bad-email/bad-password error.
func ErrInvalidCredentials() *AppError {
	return &AppError{
		Code:       CodeInvalidEmailOrPassword,
		Message:    "invalid email or password",
		HTTPStatus: http.StatusUnauthorized,
	}
}
