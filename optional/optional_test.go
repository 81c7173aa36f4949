package optional

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	t.Parallel()

	opt := Some(42)
	assert.True(t, opt.NonEmpty())
	assert.False(t, opt.Empty())

	val, ok := opt.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, val)
}

func TestNone(t *testing.T) {
	t.Parallel()

	opt := None[int]()
	assert.False(t, opt.NonEmpty())
	assert.True(t, opt.Empty())

	val, ok := opt.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, val)
}

func TestGetOrPanic(t *testing.T) {
	t.Parallel()

	t.Run("Some", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "x", Some("x").GetOrPanic())
	})

	t.Run("None", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			None[string]().GetOrPanic()
		})
	})
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Some(1).GetOrElse(2))
	assert.Equal(t, 2, None[int]().GetOrElse(2))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(7)", Some(7).String())
	assert.Equal(t, "None", None[int]().String())
}

func TestMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some("12"), Map(Some(12), strconv.Itoa))
	assert.Equal(t, None[string](), Map(None[int](), strconv.Itoa))
}
