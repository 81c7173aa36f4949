package replay

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-rbtree/logger"
	"github.com/amp-labs/amp-rbtree/maps"
	"github.com/amp-labs/amp-rbtree/optional"
	"github.com/amp-labs/amp-rbtree/rbtree"
	"github.com/amp-labs/amp-rbtree/sortable"
)

// Tree is the tree type scenarios run against.
type Tree = rbtree.Tree[sortable.NaturalString, string]

// Result is the outcome of one step. Steps with several keys report the outcomes joined
// by spaces.
type Result struct {
	Index   int
	Step    Step
	Outcome optional.Value[string]
}

func (r Result) String() string {
	subject := r.Step.Key
	if len(r.Step.Keys) > 0 {
		subject = strings.Join(r.Step.Keys, " ")
	}

	if subject == "" {
		return fmt.Sprintf("%d %s -> %s", r.Index, r.Step.Op, r.Outcome)
	}

	return fmt.Sprintf("%d %s %s -> %s", r.Index, r.Step.Op, subject, r.Outcome)
}

// Runner executes scenarios against its tree. State carries over between Run calls.
type Runner struct {
	tree     *Tree
	observer func(Result)
}

// Option configures a Runner.
type Option func(*Runner)

// WithObserver calls fn after every step, before its expectation is checked.
func WithObserver(fn func(Result)) Option {
	return func(r *Runner) {
		r.observer = fn
	}
}

// WithTree runs scenarios against an existing tree.
func WithTree(tree *Tree) Option {
	return func(r *Runner) {
		r.tree = tree
	}
}

// NewRunner returns a runner over an empty tree unless WithTree is given.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}

	if r.tree == nil {
		r.tree = rbtree.New[sortable.NaturalString, string]()
	}

	return r
}

// Tree returns the tree the runner operates on.
func (r *Runner) Tree() *Tree {
	return r.tree
}

// Run executes every step of sc in order. It stops at the first failed expectation, failed
// check or cancelled context and returns the results gathered so far.
func (r *Runner) Run(ctx context.Context, sc *Scenario) ([]Result, error) {
	log := logger.Get(logger.With(ctx, "scenario", sc.Name))
	results := make([]Result, 0, len(sc.Steps))

	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		outcome, err := r.apply(step)
		if err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}

		res := Result{Index: i + 1, Step: step, Outcome: outcome}
		results = append(results, res)

		log.Debug("replay step", "index", res.Index, "op", string(step.Op), "outcome", outcome.String())

		if r.observer != nil {
			r.observer(res)
		}

		if err := verify(step, outcome); err != nil {
			return results, fmt.Errorf("step %d (%s %s): %w", i+1, step.Op, step.Key, err)
		}
	}

	log.Info("scenario finished", "steps", len(results), "len", r.tree.Len())

	return results, nil
}

func verify(step Step, outcome optional.Value[string]) error {
	got, present := outcome.Get()

	switch {
	case step.Absent && present:
		return fmt.Errorf("%w: want None, got %q", ErrExpectation, got)
	case step.Expect != nil && !present:
		return fmt.Errorf("%w: want %q, got None", ErrExpectation, *step.Expect)
	case step.Expect != nil && got != *step.Expect:
		return fmt.Errorf("%w: want %q, got %q", ErrExpectation, *step.Expect, got)
	default:
		return nil
	}
}

func keyOf(entry maps.KeyValuePair[sortable.NaturalString, string]) string {
	return string(entry.Key)
}

func (r *Runner) apply(step Step) (optional.Value[string], error) {
	key := sortable.NaturalString(step.Key)

	switch step.Op {
	case OpInsert, OpRemove:
		return r.applyBatch(step), nil
	case OpFind:
		return r.tree.Find(key), nil
	case OpContains:
		return optional.Some(strconv.FormatBool(r.tree.Contains(key))), nil
	case OpSmallest:
		return optional.Map(r.tree.Smallest(), keyOf), nil
	case OpLargest:
		return optional.Map(r.tree.Largest(), keyOf), nil
	case OpSmaller:
		return optional.Map(r.tree.Smaller(key), keyOf), nil
	case OpLarger:
		return optional.Map(r.tree.Larger(key), keyOf), nil
	case OpLen:
		return optional.Some(strconv.Itoa(r.tree.Len())), nil
	case OpKeys:
		keys := make([]string, 0, r.tree.Len())
		for k := range r.tree.All() {
			keys = append(keys, string(k))
		}

		return optional.Some(strings.Join(keys, " ")), nil
	case OpCheck:
		height, err := r.tree.CheckRules()
		if err != nil {
			return optional.None[string](), err
		}

		return optional.Some(strconv.Itoa(height)), nil
	case OpClear:
		r.tree.Clear()

		return optional.None[string](), nil
	default:
		return optional.None[string](), fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
	}
}

// applyBatch runs insert or remove for Key or for every entry of Keys.
func (r *Runner) applyBatch(step Step) optional.Value[string] {
	keys := step.Keys
	if len(keys) == 0 {
		keys = []string{step.Key}
	}

	outcomes := make([]string, 0, len(keys))

	var last optional.Value[string]

	for _, k := range keys {
		key := sortable.NaturalString(k)

		if step.Op == OpInsert {
			value := step.Value
			if value == "" {
				value = k
			}

			last = r.tree.Insert(key, value)
		} else {
			last = r.tree.Remove(key)
		}

		outcomes = append(outcomes, last.String())
	}

	if len(keys) == 1 {
		return last
	}

	return optional.Some(strings.Join(outcomes, " "))
}
