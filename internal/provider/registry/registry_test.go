package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadavw/lantern/internal/provider/echo"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	ctx := context.Background()

	require.NoError(t, reg.Register(ctx, echo.NewProvider()))

	provider, err := reg.Get(ctx, "echo")
	require.NoError(t, err)
	assert.Equal(t, "echo", provider.Name())
}

func TestRegistry_DuplicateRegistration(t *testing.T) {
	reg := NewRegistry()
	ctx := context.Background()

	require.NoError(t, reg.Register(ctx, echo.NewProvider()))

	err := reg.Register(ctx, echo.NewProvider())
	assert.ErrorContains(t, err, "already registered")
}

func TestRegistry_RegisterNil(t *testing.T) {
	reg := NewRegistry()

	assert.Error(t, reg.Register(context.Background(), nil))
}

func TestRegistry_GetUnknown(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Get(context.Background(), "missing")
	assert.ErrorContains(t, err, "not found")

	_, err = reg.Get(context.Background(), "")
	assert.Error(t, err)
}

func TestRegistry_List(t *testing.T) {
	reg := NewRegistry()
	ctx := context.Background()

	names, err := reg.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, reg.Register(ctx, echo.NewProvider()))

	names, err = reg.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"echo"}, names)
}
