package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolGrowsOnDemand(t *testing.T) {
	p := New[int](4, 0)
	assert.Equal(t, 0, p.Blocks())

	items := make([]*int, 0, 10)
	for i := 0; i < 10; i++ {
		item, ok := p.New()
		require.True(t, ok)
		*item = i
		items = append(items, item)
	}

	assert.Equal(t, 3, p.Blocks(), "10 items at blockSize 4 should need 3 blocks")
	assert.Equal(t, 12, p.Cap())
}

func TestPoolRespectsMaxBlocks(t *testing.T) {
	p := New[int](2, 1)

	a, ok := p.New()
	require.True(t, ok)
	b, ok := p.New()
	require.True(t, ok)
	assert.NotNil(t, a)
	assert.NotNil(t, b)

	_, ok = p.New()
	assert.False(t, ok, "pool capped at one block of size 2 should exhaust after two items")
}

func TestFreeReusesMostRecentlyFreedItem(t *testing.T) {
	p := New[int](4, 0)

	x, ok := p.New()
	require.True(t, ok)
	*x = 42

	p.Free(x)

	y, ok := p.New()
	require.True(t, ok)
	assert.Same(t, x, y, "freeing then allocating again must hand back the same record")
	assert.Equal(t, 0, *y, "a reused record is zeroed")
}

func TestFreeListIsLIFO(t *testing.T) {
	p := New[int](4, 0)

	a, _ := p.New()
	b, _ := p.New()
	c, _ := p.New()

	p.Free(a)
	p.Free(b)
	p.Free(c)

	first, _ := p.New()
	second, _ := p.New()
	third, _ := p.New()

	assert.Same(t, c, first)
	assert.Same(t, b, second)
	assert.Same(t, a, third)
}
