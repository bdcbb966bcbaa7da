package backbone_test

import (
	"testing"

	"github.com/graphmotif/grandiso/backbone"
	"github.com/stretchr/testify/assert"
)

func TestEmpty(t *testing.T) {
	b := backbone.Empty()
	assert.Equal(t, 0, b.Len())
	_, ok := b.Get("m")
	assert.False(t, ok)
	assert.False(t, b.HasHost("h"))
}

func TestExtendIsImmutable(t *testing.T) {
	b0 := backbone.Empty()
	b1 := b0.Extend("m1", "h1")

	assert.Equal(t, 0, b0.Len(), "extending must not mutate the receiver")
	assert.Equal(t, 1, b1.Len())

	h, ok := b1.Get("m1")
	assert.True(t, ok)
	assert.Equal(t, "h1", h)
	assert.True(t, b1.HasHost("h1"))
}

func TestExtendKeepsSortedOrder(t *testing.T) {
	b := backbone.Empty().Extend("z", "hz").Extend("a", "ha").Extend("m", "hm")
	assert.Equal(t, []string{"a", "m", "z"}, b.Domain())
}

func TestToMap(t *testing.T) {
	b := backbone.Empty().Extend("m1", "h1").Extend("m2", "h2")
	assert.Equal(t, map[string]string{"m1": "h1", "m2": "h2"}, b.ToMap())
}

func TestPairsIsACopy(t *testing.T) {
	b := backbone.Empty().Extend("m1", "h1")
	pairs := b.Pairs()
	pairs[0].Host = "mutated"

	h, _ := b.Get("m1")
	assert.Equal(t, "h1", h)
}
