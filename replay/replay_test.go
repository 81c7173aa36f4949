package replay_test

import (
	"context"
	"os"
	"testing"

	"github.com/amp-labs/amp-rbtree/logger"
	"github.com/amp-labs/amp-rbtree/replay"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	t.Helper()

	return logger.WithLogger(t.Context(), slogt.New(t))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	sc, err := replay.Load("testdata/neighbors.yaml")
	require.NoError(t, err)

	assert.Equal(t, "neighbors", sc.Name)
	require.Len(t, sc.Steps, 14)
	assert.Equal(t, replay.OpInsert, sc.Steps[0].Op)
	assert.Equal(t, []string{"k10", "k2", "k1", "k20", "k3"}, sc.Steps[0].Keys)
	assert.True(t, sc.Steps[7].Absent)
}

func TestLoadFromFS(t *testing.T) {
	t.Parallel()

	sc, err := replay.LoadFromFS(os.DirFS("testdata"), "neighbors.yaml")
	require.NoError(t, err)
	assert.Equal(t, "neighbors", sc.Name)

	_, err = replay.LoadFromFS(os.DirFS("testdata"), "missing.yaml")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		yaml string
		want []error
	}{
		{name: "no name", yaml: "steps: [{op: len}]", want: []error{replay.ErrNameRequired}},
		{name: "no steps", yaml: "name: x", want: []error{replay.ErrNoSteps}},
		{
			name: "every bad step is reported",
			yaml: `
name: bad
steps:
  - op: explode
  - op: find
  - op: insert
  - op: find
    key: a
    expect: b
    absent: true
  - op: insert
    keys: [a, b]
    expect: c
`,
			want: []error{
				replay.ErrUnknownOp, replay.ErrKeyRequired,
				replay.ErrConflictingWant, replay.ErrExpectOnBatch,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := replay.LoadFromBytes([]byte(tc.yaml))
			for _, want := range tc.want {
				require.ErrorIs(t, err, want)
			}
		})
	}

	_, err := replay.LoadFromBytes([]byte("name: [unclosed"))
	require.Error(t, err)
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	sc, err := replay.Load("testdata/neighbors.yaml")
	require.NoError(t, err)

	var observed []string

	runner := replay.NewRunner(replay.WithObserver(func(r replay.Result) {
		observed = append(observed, r.String())
	}))

	results, err := runner.Run(testContext(t), sc)
	require.NoError(t, err)

	require.Len(t, results, len(sc.Steps))
	assert.Len(t, observed, len(sc.Steps))
	assert.Equal(t, "6 smaller k10 -> Some(k3)", observed[5])
	assert.Equal(t, "1 insert k10 k2 k1 k20 k3 -> Some(None None None None None)", observed[0])
	assert.Equal(t, 4, runner.Tree().Len())
}

func TestRunner_FailedExpectation(t *testing.T) {
	t.Parallel()

	sc, err := replay.LoadFromBytes([]byte(`
name: wrong
steps:
  - op: insert
    keys: [a, b]
  - op: smallest
    expect: b
  - op: len
`))
	require.NoError(t, err)

	results, err := replay.NewRunner().Run(testContext(t), sc)
	require.ErrorIs(t, err, replay.ErrExpectation)
	assert.Len(t, results, 2)
}

func TestRunner_StateCarriesOver(t *testing.T) {
	t.Parallel()

	first, err := replay.LoadFromBytes([]byte("name: one\nsteps: [{op: insert, key: a}]"))
	require.NoError(t, err)

	second, err := replay.LoadFromBytes([]byte("name: two\nsteps: [{op: find, key: a, expect: a}, {op: clear}, {op: len, expect: '0'}]"))
	require.NoError(t, err)

	runner := replay.NewRunner()

	_, err = runner.Run(testContext(t), first)
	require.NoError(t, err)

	_, err = runner.Run(testContext(t), second)
	require.NoError(t, err)
}

func TestRunner_Cancelled(t *testing.T) {
	t.Parallel()

	sc, err := replay.LoadFromBytes([]byte("name: c\nsteps: [{op: len}]"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	results, err := replay.NewRunner().Run(ctx, sc)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}
