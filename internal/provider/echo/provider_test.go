package echo

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadavw/lantern/internal/domain"
)

func TestProvider_Deterministic(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	a, err := p.EmbedOne(ctx, "hello world", 64, domain.TaskRetrievalDocument)
	require.NoError(t, err)

	b, err := p.EmbedOne(ctx, "hello world", 64, domain.TaskRetrievalQuery)
	require.NoError(t, err)

	assert.Equal(t, a, b, "identical text embeds identically regardless of task hint")
}

func TestProvider_DistinctTexts(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	a, err := p.EmbedOne(ctx, "hello world", 64, domain.TaskRetrievalDocument)
	require.NoError(t, err)

	b, err := p.EmbedOne(ctx, "goodbye world", 64, domain.TaskRetrievalDocument)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestProvider_Dimension(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	for _, dim := range []int{1, 8, 64, 3072} {
		vector, err := p.EmbedOne(ctx, "sample", dim, domain.TaskRetrievalDocument)
		require.NoError(t, err)
		assert.Len(t, vector, dim)
	}
}

func TestProvider_UnitLength(t *testing.T) {
	p := NewProvider()

	vector, err := p.EmbedOne(context.Background(), "normalize me", 128, domain.TaskRetrievalDocument)
	require.NoError(t, err)

	var norm float64
	for _, v := range vector {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-3)
}

func TestProvider_InvalidInput(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	_, err := p.EmbedOne(ctx, "", 64, domain.TaskRetrievalDocument)
	assert.Error(t, err)

	_, err = p.EmbedOne(ctx, "text", 0, domain.TaskRetrievalDocument)
	assert.Error(t, err)
}

func TestProvider_Identity(t *testing.T) {
	p := NewProvider()

	assert.Equal(t, "echo", p.Name())
	assert.Equal(t, "echo-embedding-001", p.Model())
}
