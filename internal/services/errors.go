// Package services provides the business logic layer between handlers and the
// temperature series.
package services

import (
	"errors"

	"github.com/sartorproj/tempstats/tempseries"
)

// Error codes returned to API clients.
const (
	CodeInvalidInput = "INVALID_INPUT"
	CodeOutOfRange   = "OUT_OF_RANGE"
	CodeEmptySeries  = "EMPTY_SERIES"
	CodeUnknownStat  = "UNKNOWN_STATISTIC"
	CodeInternal     = "INTERNAL_ERROR"
)

// ServiceError represents a service layer error
type ServiceError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Err     error                  `json:"-"`
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError
func NewServiceError(code, message string) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
	}
}

// wrapSeriesError classifies an error from the series into a ServiceError.
func wrapSeriesError(err error) error {
	if err == nil {
		return nil
	}

	code := CodeInternal
	switch {
	case errors.Is(err, tempseries.ErrInvalidInput):
		code = CodeInvalidInput
	case errors.Is(err, tempseries.ErrOutOfRange):
		code = CodeOutOfRange
	case errors.Is(err, tempseries.ErrEmptySeries):
		code = CodeEmptySeries
	}
	return &ServiceError{Code: code, Message: err.Error(), Err: err}
}
