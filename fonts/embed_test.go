package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	for _, name := range []string{"builtin:go-regular", "built-in:go-bold", "go-mono", ""} {
		data, err := Load(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}

	_, err := Load("builtin:inter")
	assert.ErrorContains(t, err, "go-regular")
}

func TestIsBuiltin(t *testing.T) {
	assert.True(t, IsBuiltin("builtin:go-bold"))
	assert.True(t, IsBuiltin(""))
	assert.False(t, IsBuiltin("fonts/Inter.ttf"))
}
