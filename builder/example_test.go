package builder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oaswrite/oaswrite/docvalue"
	"github.com/oaswrite/oaswrite/oaserrors"
)

func TestExampleBuilder(t *testing.T) {
	ex, err := NewExample().
		Summary("a dog").
		Description("a good one").
		Value(map[string]any{"name": "Rex", "age": 3}).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "a dog", ex.Summary)
	assert.Equal(t, "a good one", ex.Description)
	require.NotNil(t, ex.Value)
	assert.Equal(t, docvalue.KindMap, ex.Value.Kind())
}

func TestExampleBuilder_ExternalValue(t *testing.T) {
	ex, err := NewExample().ExternalValue("https://example.com/dog.json").Build()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/dog.json", ex.ExternalValue)
	assert.Nil(t, ex.Value)
}

func TestExampleBuilder_NullValue(t *testing.T) {
	// An explicit null payload is a present value, not an absent one.
	ex, err := NewExample().Value(nil).Build()
	require.NoError(t, err)
	require.NotNil(t, ex.Value)
	assert.True(t, ex.Value.IsNull())
}

func TestExampleBuilder_BadValue(t *testing.T) {
	_, err := NewExample().Value(make(chan int)).Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrConversion))
}

func TestExampleBuilder_BuildIsSnapshot(t *testing.T) {
	b := NewExample().Summary("v1")
	first, err := b.Build()
	require.NoError(t, err)

	b.Summary("v2")
	second, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "v1", first.Summary)
	assert.Equal(t, "v2", second.Summary)
}
