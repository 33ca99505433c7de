package locker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_TakeUntilEmpty(t *testing.T) {
	pool := NewPool(3)
	require.Equal(t, 3, pool.Available())

	seen := make(map[string]bool)
	var numbers []int
	for i := 0; i < 3; i++ {
		l, ok := pool.Take()
		require.True(t, ok)
		require.NotNil(t, l)
		assert.False(t, seen[l.ID()], "locker %s handed out twice", l.ID())
		seen[l.ID()] = true
		numbers = append(numbers, l.Number())
	}

	assert.Equal(t, []int{3, 2, 1}, numbers)
	assert.Equal(t, 0, pool.Available())

	l, ok := pool.Take()
	assert.False(t, ok)
	assert.Nil(t, l)
	assert.Equal(t, 0, pool.Available())
}

func TestNewPool_NonPositive(t *testing.T) {
	for _, n := range []int{0, -4} {
		pool := NewPool(n)
		assert.Equal(t, 0, pool.Available())
		_, ok := pool.Take()
		assert.False(t, ok)
	}
}
