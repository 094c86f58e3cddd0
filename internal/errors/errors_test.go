package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_Constants(t *testing.T) {
	tests := []struct {
		name     string
		errType  ErrorType
		expected string
	}{
		{
			name:     "parsing error type",
			errType:  ErrTypeParsing,
			expected: "PARSING",
		},
		{
			name:     "validation error type",
			errType:  ErrTypeValidation,
			expected: "VALIDATION",
		},
		{
			name:     "not found error type",
			errType:  ErrTypeNotFound,
			expected: "NOT_FOUND",
		},
		{
			name:     "config error type",
			errType:  ErrTypeConfig,
			expected: "CONFIG",
		},
		{
			name:     "export error type",
			errType:  ErrTypeExport,
			expected: "EXPORT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.errType))
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name        string
		appError    *AppError
		wantMessage string
	}{
		{
			name: "error without cause",
			appError: &AppError{
				Type:    ErrTypeParsing,
				Message: "file could not be parsed",
				Cause:   nil,
			},
			wantMessage: "[PARSING] file could not be parsed",
		},
		{
			name: "error with cause",
			appError: &AppError{
				Type:    ErrTypeExport,
				Message: "failed to write spreadsheet",
				Cause:   fmt.Errorf("disk full"),
			},
			wantMessage: "[EXPORT] failed to write spreadsheet: disk full",
		},
		{
			name: "error with empty message",
			appError: &AppError{
				Type:    ErrTypeValidation,
				Message: "",
				Cause:   nil,
			},
			wantMessage: "[VALIDATION] ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying failure")
	appErr := NewParsingError("could not read file", cause)

	require.NotNil(t, appErr.Unwrap())
	assert.True(t, errors.Is(appErr, cause), "errors.Is must see through AppError")

	var target *AppError
	assert.True(t, errors.As(appErr, &target))
	assert.Equal(t, ErrTypeParsing, target.Type)
}

func TestAppError_WithContext(t *testing.T) {
	appErr := NewExportError("render failed", nil).
		WithContext("file", "relatorio_administrativo.pdf").
		WithContext("attempt", 1)

	require.NotNil(t, appErr.Context)
	assert.Equal(t, "relatorio_administrativo.pdf", appErr.Context["file"])
	assert.Equal(t, 1, appErr.Context["attempt"])
}

func TestNewAppError_Constructors(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		build    func() *AppError
		wantType ErrorType
		wantNil  bool
	}{
		{
			name:     "parsing constructor",
			build:    func() *AppError { return NewParsingError("p", cause) },
			wantType: ErrTypeParsing,
		},
		{
			name:     "validation constructor has no cause",
			build:    func() *AppError { return NewValidationError("v") },
			wantType: ErrTypeValidation,
			wantNil:  true,
		},
		{
			name:     "not found constructor",
			build:    func() *AppError { return NewNotFoundError("input directory") },
			wantType: ErrTypeNotFound,
			wantNil:  true,
		},
		{
			name:     "config constructor",
			build:    func() *AppError { return NewConfigError("c", cause) },
			wantType: ErrTypeConfig,
		},
		{
			name:     "export constructor",
			build:    func() *AppError { return NewExportError("e", cause) },
			wantType: ErrTypeExport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			assert.Equal(t, tt.wantType, err.Type)
			if tt.wantNil {
				assert.Nil(t, err.Cause)
			} else {
				assert.Equal(t, cause, err.Cause)
			}
		})
	}
}
