package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	second, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, first, idLength)
	assert.NotEqual(t, first, second)
	assert.Empty(t, strings.Trim(first, idAlphabet))
}

func TestGeneratePrefixedID(t *testing.T) {
	id, err := GeneratePrefixedID("dep")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, "dep_"))
	assert.Len(t, id, len("dep_")+idLength)
}
