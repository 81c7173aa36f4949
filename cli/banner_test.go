package cli_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/amp-labs/amp-rbtree/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBanner(t *testing.T) {
	t.Parallel()

	t.Run("alignments", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "╒══════╕\n│ab    │\n└──────┘\n", cli.Banner("ab", 8, cli.AlignLeft))
		assert.Equal(t, "╒══════╕\n│  ab  │\n└──────┘\n", cli.Banner("ab", 8, cli.AlignCenter))
		assert.Equal(t, "╒══════╕\n│    ab│\n└──────┘\n", cli.Banner("ab", 8, cli.AlignRight))
	})

	t.Run("multiple lines", func(t *testing.T) {
		t.Parallel()

		lines := strings.Split(strings.TrimSuffix(cli.Banner("one\r\ntwo", 10, cli.AlignLeft), "\n"), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "│one     │", lines[1])
		assert.Equal(t, "│two     │", lines[2])
	})

	t.Run("long lines are cut", func(t *testing.T) {
		t.Parallel()

		lines := strings.Split(cli.Banner("abcdefghij", 8, cli.AlignLeft), "\n")
		assert.Equal(t, "│abcde…│", lines[1])
		assert.Equal(t, 8, utf8.RuneCountInString(lines[1]))
	})

	t.Run("invalid input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, cli.Banner("x", 0, cli.AlignLeft))
		assert.Empty(t, cli.Banner("x", 10, cli.Alignment(42)))
	})
}

func TestDivider(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "┠────┨\n", cli.Divider(6))
	assert.Empty(t, cli.Divider(1))
}
