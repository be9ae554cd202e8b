package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without wrapped error",
			err:  New("CUSTOMER_NOT_FOUND", "customer not found", http.StatusNotFound),
			want: "CUSTOMER_NOT_FOUND: customer not found",
		},
		{
			name: "with wrapped error",
			err:  Wrap(fmt.Errorf("db error"), "DB_ERROR", "database failure", http.StatusInternalServerError),
			want: "DB_ERROR: database failure: db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap(inner, "CODE", "msg", 500)

	if !errors.Is(appErr, inner) {
		t.Error("errors.Is should match inner error")
	}
}

func TestIsAppError(t *testing.T) {
	appErr := NotFound("NOT_FOUND", "resource not found")
	wrapped := fmt.Errorf("wrapped: %w", appErr)

	got, ok := IsAppError(wrapped)
	if !ok {
		t.Fatal("IsAppError should return true for wrapped AppError")
	}
	if got.Code != "NOT_FOUND" {
		t.Errorf("Code = %q, want NOT_FOUND", got.Code)
	}
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantStatus int
	}{
		{"NotFound", NotFound("NF", "not found"), http.StatusNotFound},
		{"BadRequest", BadRequest("BR", "bad request"), http.StatusBadRequest},
		{"Unauthorized", Unauthorized("UA", "unauthorized"), http.StatusUnauthorized},
		{"Forbidden", Forbidden("FB", "forbidden"), http.StatusForbidden},
		{"Conflict", Conflict("CF", "conflict"), http.StatusConflict},
		{"Internal", Internal("IE", "internal"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.HTTPStatus != tt.wantStatus {
				t.Errorf("HTTPStatus = %d, want %d", tt.err.HTTPStatus, tt.wantStatus)
			}
		})
	}
}

func TestAppError_WithParam(t *testing.T) {
	err := NotFound("NF", "not found").
		WithParam("id", "cust-1").
		WithParam("kind", "customer")

	if len(err.Params) != 2 {
		t.Fatalf("len(Params) = %d, want 2", len(err.Params))
	}
	if err.Params["id"] != "cust-1" {
		t.Errorf("Params[id] = %v, want cust-1", err.Params["id"])
	}
}

func TestAppError_WithFieldErrors(t *testing.T) {
	err := BadRequest("INVALID_REQUEST", "validation failed").WithFieldErrors([]FieldError{
		{Field: "vin", Code: "INVALID_VIN", Message: "VIN must be 17 characters"},
	})

	if len(err.FieldErrors) != 1 {
		t.Fatalf("len(FieldErrors) = %d, want 1", len(err.FieldErrors))
	}
	if err.FieldErrors[0].Field != "vin" {
		t.Errorf("Field = %q, want vin", err.FieldErrors[0].Field)
	}
}
