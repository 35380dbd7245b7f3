package tracking

import (
	"errors"
	"fmt"
)

var (
	ErrLeadWithoutPhone      = errors.New("whatsapp lead without phone")
	ErrBusinessNotConfigured = errors.New("business profile not configured")
	ErrPixelNotConfigured    = errors.New("meta pixel not configured")
	ErrLoadBusiness          = errors.New("error loading business profile")
)

// TrackingError é um erro com o código da API para o envio de conversões
type TrackingError struct {
	Err     error
	Code    string
	Details string
}

func (e *TrackingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *TrackingError) Unwrap() error {
	return e.Err
}

func NewTrackingError(err error, code string, details string) *TrackingError {
	return &TrackingError{Err: err, Code: code, Details: details}
}
