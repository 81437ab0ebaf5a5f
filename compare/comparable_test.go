package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestString is a simple string wrapper that implements Comparable.
type TestString string

func (s TestString) Equals(other TestString) bool {
	return string(s) == string(other)
}

// TestNumber is a numeric type that implements Comparable.
type TestNumber int

func (n TestNumber) Equals(other TestNumber) bool {
	return int(n) == int(other)
}

// TestStruct is a struct that implements Comparable with custom equality logic.
type TestStruct struct {
	ID   int
	Name string
}

func (t TestStruct) Equals(other TestStruct) bool {
	return t.ID == other.ID && t.Name == other.Name
}

func TestComparable_TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        TestString
		b        TestString
		expected bool
	}{
		{
			name:     "equal strings",
			a:        "hello",
			b:        "hello",
			expected: true,
		},
		{
			name:     "different strings",
			a:        "hello",
			b:        "world",
			expected: false,
		},
		{
			name:     "empty strings",
			a:        "",
			b:        "",
			expected: true,
		},
		{
			name:     "one empty string",
			a:        "hello",
			b:        "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := tt.a.Equals(tt.b)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEquals_Function(t *testing.T) {
	t.Parallel()

	t.Run("with TestString", func(t *testing.T) {
		t.Parallel()

		a := TestString("hello")
		b := TestString("hello")
		c := TestString("world")

		assert.True(t, Equals(a, b))
		assert.False(t, Equals(a, c))
	})

	t.Run("with TestNumber", func(t *testing.T) {
		t.Parallel()

		a := TestNumber(42)
		b := TestNumber(42)
		c := TestNumber(24)

		assert.True(t, Equals(a, b))
		assert.False(t, Equals(a, c))
	})

	t.Run("with TestStruct", func(t *testing.T) {
		t.Parallel()

		a := TestStruct{ID: 1, Name: "Alice"}
		b := TestStruct{ID: 1, Name: "Alice"}
		c := TestStruct{ID: 2, Name: "Bob"}

		assert.True(t, Equals(a, b))
		assert.False(t, Equals(a, c))
	})
}

func TestOrderedPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, Equal(3, 3))
	assert.False(t, Equal("a", "b"))
	assert.True(t, Less(1.5, 2.5))
	assert.False(t, Less(2, 2))
	assert.True(t, Greater("b", "a"))
	assert.False(t, Greater(2, 2))
}
