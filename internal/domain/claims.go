package domain

import "github.com/golang-jwt/jwt/v5"

// Claims do token de licença; a emissão acontece fora deste serviço
type Claims struct {
	LicenseKey string `json:"license_key"`
	Email      string `json:"email,omitempty"`
	Admin      bool   `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

// Namespace isola os dados de cada licença no armazenamento
func (c *Claims) Namespace() string {
	if c == nil || c.LicenseKey == "" {
		return "anonymous"
	}
	return c.LicenseKey
}
