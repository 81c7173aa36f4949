package assert_test

import (
	"errors"
	"testing"

	"github.com/amp-labs/amp-rbtree/assert"
	testify "github.com/stretchr/testify/assert"
)

var errBroken = errors.New("broken")

func TestTrue(t *testing.T) {
	t.Parallel()

	t.Run("passes on true", func(t *testing.T) {
		t.Parallel()

		testify.NotPanics(t, func() { assert.True(true) })
	})

	t.Run("default message", func(t *testing.T) {
		t.Parallel()

		testify.PanicsWithValue(t, "assertion failed", func() { assert.True(false) })
	})

	t.Run("format string", func(t *testing.T) {
		t.Parallel()

		testify.PanicsWithValue(t, "missing child of 42", func() {
			assert.True(false, "missing child of %d", 42)
		})
	})

	t.Run("non-string args", func(t *testing.T) {
		t.Parallel()

		testify.PanicsWithValue(t, "assertion failed: [1 2]", func() {
			assert.True(false, 1, 2)
		})
	})
}

func TestFalse(t *testing.T) {
	t.Parallel()

	testify.NotPanics(t, func() { assert.False(false) })
	testify.Panics(t, func() { assert.False(true) })
}

func TestNoError(t *testing.T) {
	t.Parallel()

	testify.NotPanics(t, func() { assert.NoError(nil) })
	testify.PanicsWithValue(t, "broken", func() { assert.NoError(errBroken) })
	testify.PanicsWithValue(t, "rotate 7: broken", func() {
		assert.NoError(errBroken, "rotate %d", 7)
	})
}

func TestUnreachable(t *testing.T) {
	t.Parallel()

	testify.PanicsWithValue(t, "unreachable code reached", func() { assert.Unreachable() })
	testify.PanicsWithValue(t, "bad state 3", func() { assert.Unreachable("bad state %d", 3) })
}
