package sortable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrappers(t *testing.T) {
	t.Parallel()

	assert.True(t, Int(1).LessThan(2))
	assert.False(t, Int(2).LessThan(2))
	assert.True(t, Int(2).Equals(2))

	assert.True(t, Byte('a').LessThan('b'))
	assert.True(t, String("apple").LessThan("banana"))
	assert.False(t, String("b").Equals("a"))

	assert.True(t, Float(-0.5).LessThan(0.25))
	assert.True(t, Float(1.5).Equals(1.5))
}

func TestLess(t *testing.T) {
	t.Parallel()

	assert.True(t, Less(Int(-3), Int(4)))
	assert.False(t, Less(String("z"), String("a")))
	assert.False(t, Less(Float(2), Float(2)))
}
