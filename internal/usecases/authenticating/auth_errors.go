package authenticating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/ads-launcher-api/pkg/apiErrors"
)

var (
	ErrInvalidToken        = errors.New("token inválido")
	ErrExpiredToken        = errors.New("token expirado")
	ErrMissingLicense      = errors.New("token sem licença")
	ErrSecretNotConfigured = errors.New("segredo de autenticação não configurado")
)

// AuthError é um erro com o código da API para a validação da licença
type AuthError struct {
	Err     error
	Code    string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(err error, code string, details string) *AuthError {
	return &AuthError{Err: err, Code: code, Details: details}
}

// CodeOf devolve o código da API para uma falha de autenticação; erros desconhecidos viram token inválido
func CodeOf(err error) string {
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.Code != "" {
		return authErr.Code
	}
	return apiErrors.ErrInvalidToken
}
