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
			name: "without cause",
			err:  NotFound("Property"),
			want: "NOT_FOUND: Property not found",
		},
		{
			name: "with cause",
			err:  Internal("Failed to load properties", fmt.Errorf("connection refused")),
			want: "INTERNAL_ERROR: Failed to load properties (caused by: connection refused)",
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

func TestAppError_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"not found", NotFound("Booking"), http.StatusNotFound},
		{"validation", Validation("bad client data", nil), http.StatusUnprocessableEntity},
		{"conflict", Conflict("dates already booked", nil), http.StatusConflict},
		{"invalid input", InvalidInput("empty id"), http.StatusBadRequest},
		{"internal", Internal("boom", nil), http.StatusInternalServerError},
		{"unavailable", Unavailable("mongo"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.StatusCode(); got != tt.want {
				t.Errorf("StatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Internal("persist failed", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := Conflict("date taken", map[string]any{"dates": []string{"2026-08-10"}})
	if got := AsAppError(appErr); got != appErr {
		t.Error("AsAppError should return the same *AppError unchanged")
	}

	plain := fmt.Errorf("some failure")
	got := AsAppError(plain)
	if got.Code != CodeInternal {
		t.Errorf("AsAppError(plain).Code = %q, want %q", got.Code, CodeInternal)
	}
	if !errors.Is(got, plain) {
		t.Error("converted error should wrap the original")
	}
}
