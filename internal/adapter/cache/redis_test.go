package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_BadURL(t *testing.T) {
	_, err := Connect(context.Background(), "redis://localhost:6379/notadb")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse redis url")
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := Connect(context.Background(), "127.0.0.1:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping redis")
}
