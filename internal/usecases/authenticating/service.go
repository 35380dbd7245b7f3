package authenticating

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/ads-launcher-api/internal/config"
	"github.com/vfg2006/ads-launcher-api/internal/domain"
	"github.com/vfg2006/ads-launcher-api/pkg/apiErrors"
)

// tolerância de relógio entre o painel de licenças e a API
const clockLeeway = 30 * time.Second

// Authenticator valida os tokens de licença emitidos pelo painel de vendas
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
	parser *jwt.Parser
}

func NewService(cfg *config.Config) Authenticator {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{
			jwt.SigningMethodHS256.Alg(),
			jwt.SigningMethodHS384.Alg(),
			jwt.SigningMethodHS512.Alg(),
		}),
		jwt.WithLeeway(clockLeeway),
	}
	if issuer := strings.TrimSpace(cfg.Auth.Issuer); issuer != "" {
		options = append(options, jwt.WithIssuer(issuer))
	}

	return &Service{
		secret: []byte(cfg.Auth.Secret),
		parser: jwt.NewParser(options...),
	}
}

// ValidateToken devolve as claims de uma licença válida; a licença vira o namespace dos dados
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if len(s.secret) == 0 {
		return nil, NewAuthError(ErrSecretNotConfigured, apiErrors.ErrNotConfigured, "")
	}

	claims := &domain.Claims{}
	_, err := s.parser.ParseWithClaims(strings.TrimSpace(tokenString), claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
	case err != nil:
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims.LicenseKey = strings.TrimSpace(claims.LicenseKey)
	if claims.LicenseKey == "" {
		return nil, NewAuthError(ErrMissingLicense, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
