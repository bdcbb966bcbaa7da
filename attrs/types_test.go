package attrs_test

import (
	"testing"

	"github.com/graphmotif/grandiso/attrs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueEqual(t *testing.T) {
	assert.True(t, attrs.Int64Value(3).Equal(attrs.Int64Value(3)))
	assert.False(t, attrs.Int64Value(3).Equal(attrs.Int64Value(4)))
	assert.False(t, attrs.Int64Value(1).Equal(attrs.Float64Value(1)))
	assert.True(t, attrs.StringValue("red").Equal(attrs.StringValue("red")))
	assert.True(t, attrs.BytesValue([]byte("ab")).Equal(attrs.BytesValue([]byte("ab"))))
	assert.True(t, attrs.BoolValue(true).Equal(attrs.BoolValue(true)))
}

func TestBagGetAndEqual(t *testing.T) {
	b := attrs.Bag{"color": attrs.StringValue("red")}

	v, ok := b.Get("color")
	require.True(t, ok)
	assert.Equal(t, attrs.StringValue("red"), v)

	_, ok = b.Get("missing")
	assert.False(t, ok)

	other := attrs.Bag{"color": attrs.StringValue("red")}
	assert.True(t, b.Equal(other))

	other["extra"] = attrs.BoolValue(true)
	assert.False(t, b.Equal(other))
}
