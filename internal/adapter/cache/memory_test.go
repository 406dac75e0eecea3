package cache

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Title  string   `json:"title"`
	Amount *big.Int `json:"amount"`
}

func TestMemory_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	var miss record
	ok, err := c.Get(ctx, "campaign:1", &miss)
	require.NoError(t, err)
	assert.False(t, ok)

	in := record{Title: "Water", Amount: big.NewInt(42)}
	require.NoError(t, c.Set(ctx, "campaign:1", in, time.Minute))

	in.Amount.SetInt64(7)

	var out record
	ok, err = c.Get(ctx, "campaign:1", &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Water", out.Title)
	assert.Equal(t, "42", out.Amount.String())
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	now := time.Unix(1000, 0)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", 1, time.Second))
	require.NoError(t, c.Set(ctx, "forever", 2, 0))

	now = now.Add(time.Second)

	var v int
	ok, err := c.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.Get(ctx, "forever", &v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestMemory_Delete(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	require.NoError(t, c.Set(ctx, "a", 1, 0))
	require.NoError(t, c.Set(ctx, "b", 2, 0))
	require.NoError(t, c.Delete(ctx, "a", "missing"))

	var v int
	ok, _ := c.Get(ctx, "a", &v)
	assert.False(t, ok)
	ok, _ = c.Get(ctx, "b", &v)
	assert.True(t, ok)
}

func TestMemory_DecodeError(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	require.NoError(t, c.Set(ctx, "k", "text", 0))

	var v int
	_, err := c.Get(ctx, "k", &v)
	assert.Error(t, err)
}
