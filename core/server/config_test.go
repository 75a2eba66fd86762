package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthEnabled(t *testing.T) {
	assert.False(t, Config{}.AuthEnabled())
	assert.True(t, Config{ApiKey: "secret"}.AuthEnabled())
}
