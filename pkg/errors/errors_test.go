package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "without underlying error",
			appErr: &AppError{
				Code:    CodeNotFound,
				Message: "hotel not found",
			},
			expected: "NOT_FOUND: hotel not found",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodeUpstream,
				Message: "search failed",
				Err:     errors.New("connection refused"),
			},
			expected: "UPSTREAM_ERROR: search failed (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.appErr.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := Wrap(originalErr, CodeInternal, "wrapped", http.StatusInternalServerError)

	if !errors.Is(appErr, originalErr) {
		t.Errorf("errors.Is should find the original error")
	}
}

func TestValidation(t *testing.T) {
	details := map[string]any{"field": "check_out"}
	err := Validation("validation failed", details)

	if err.Code != CodeValidation {
		t.Errorf("expected code %s, got %s", CodeValidation, err.Code)
	}
	if err.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, err.HTTPStatus)
	}
	if err.Details["field"] != "check_out" {
		t.Errorf("expected field 'check_out', got %v", err.Details["field"])
	}
}

func TestUpstream(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantStatus int
	}{
		{name: "client error passes through", status: http.StatusBadRequest, wantStatus: http.StatusBadRequest},
		{name: "not found passes through", status: http.StatusNotFound, wantStatus: http.StatusNotFound},
		{name: "server error becomes bad gateway", status: http.StatusInternalServerError, wantStatus: http.StatusBadGateway},
		{name: "network failure becomes bad gateway", status: 0, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Upstream(tt.status, "Room unavailable", nil)
			if err.Code != CodeUpstream {
				t.Errorf("expected code %s, got %s", CodeUpstream, err.Code)
			}
			if err.HTTPStatus != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, err.HTTPStatus)
			}
			if err.Message != "Room unavailable" {
				t.Errorf("expected message 'Room unavailable', got %s", err.Message)
			}
		})
	}
}

func TestUnavailable(t *testing.T) {
	err := Unavailable("Hotel API")

	if err.HTTPStatus != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, err.HTTPStatus)
	}
	if err.Message != "Hotel API is temporarily unavailable" {
		t.Errorf("expected message to contain service name, got %s", err.Message)
	}
}

func TestIsAppError(t *testing.T) {
	appErr := NotFound("Hotel")
	wrapped := fmt.Errorf("lookup: %w", appErr)

	if !IsAppError(appErr) {
		t.Errorf("IsAppError() should return true for AppError")
	}
	if !IsAppError(wrapped) {
		t.Errorf("IsAppError() should see through wrapping")
	}
	if IsAppError(errors.New("regular error")) {
		t.Errorf("IsAppError() should return false for regular error")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("Hotel")
	regularErr := errors.New("regular error")

	if AsAppError(appErr) != appErr {
		t.Errorf("AsAppError() should return same AppError")
	}

	result := AsAppError(regularErr)
	if result.Code != CodeInternal {
		t.Errorf("AsAppError() should wrap regular error as internal error")
	}
	if result.Err != regularErr {
		t.Errorf("AsAppError() should wrap the original error")
	}
}

func TestAppError_ToJSON(t *testing.T) {
	err := Validation("name cannot combine with province_id, soum_id, or location.", nil)
	jsonStr := string(err.ToJSON())

	if !strings.Contains(jsonStr, CodeValidation) {
		t.Errorf("ToJSON() should contain error code, got %s", jsonStr)
	}
	if strings.Contains(jsonStr, "details") {
		t.Errorf("ToJSON() should omit empty details, got %s", jsonStr)
	}
}
