package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 12
)

// GenerateID gera ids curtos para ativos e tokens de lock
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}

// GeneratePrefixedID gera ids legíveis nos logs, ex.: "dep_X1b2C3d4E5f6"
func GeneratePrefixedID(prefix string) (string, error) {
	id, err := GenerateID()
	if err != nil {
		return "", err
	}
	return prefix + "_" + id, nil
}
