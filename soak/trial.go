package soak

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	amperrors "github.com/amp-labs/amp-rbtree/errors"
	"github.com/amp-labs/amp-rbtree/logger"
	"github.com/amp-labs/amp-rbtree/rbtree"
	"github.com/amp-labs/amp-rbtree/sortable"
)

var (
	ErrInsertMismatch    = errors.New("insert of a new key returned a value")
	ErrLookupMismatch    = errors.New("lookup returned the wrong value")
	ErrTraversalMismatch = errors.New("traversal does not match the inserted keys")
	ErrNeighborMismatch  = errors.New("neighbor query returned the wrong key")
	ErrRemoveMismatch    = errors.New("remove did not behave as expected")
	ErrLenMismatch       = errors.New("length does not match the key count")
)

// TrialResult describes one finished trial.
type TrialResult struct {
	Index int
	// Seed is the run seed. rand.NewPCG(Seed, Index) replays the trial's random stream.
	Seed        uint64
	Inserted    int
	Removed     int
	Height      int
	BlackHeight int
	Duration    time.Duration
	// Violations counts every problem found, including those not kept in Err.
	Violations int
	Err        error
}

// Passed reports whether the trial found no violation.
func (t TrialResult) Passed() bool {
	return t.Violations == 0
}

type tree = rbtree.Tree[sortable.Int, int]

// checker gathers the violations of one trial and feeds the shared counters.
type checker struct {
	run  *run
	errs *amperrors.Collection
}

func (c *checker) fail(kind string, err error) {
	violations.WithLabelValues(kind).Inc()
	c.run.violations.Inc()
	c.errs.Add(err)
}

func (c *checker) ops(op string, n int) {
	operations.WithLabelValues(op).Add(float64(n))
	c.run.operations.Add(int64(n))
}

func kindOf(err error) string {
	switch {
	case errors.Is(err, rbtree.ErrRootIsRed):
		return "root_red"
	case errors.Is(err, rbtree.ErrConsecutiveReds):
		return "consecutive_reds"
	case errors.Is(err, rbtree.ErrBlackHeightMismatch):
		return "black_height"
	case errors.Is(err, rbtree.ErrOrdering):
		return "ordering"
	default:
		return "contract"
	}
}

// drawKeys returns n distinct keys from [0, space) in draw order.
func drawKeys(rng *rand.Rand, n, space int) []int {
	seen := make(map[int]struct{}, n)
	keys := make([]int, 0, n)

	for len(keys) < n {
		k := rng.IntN(space)
		if _, dup := seen[k]; dup {
			continue
		}

		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	return keys
}

func valueFor(key int) int {
	return key*2 + 1
}

func (r *run) trial(ctx context.Context, index int) TrialResult {
	start := time.Now()
	seed := r.opts.Seed
	rng := rand.New(rand.NewPCG(seed, uint64(index))) //nolint:gosec

	res := TrialResult{Index: index, Seed: seed}
	chk := &checker{run: r, errs: amperrors.NewCollection(maxReportedViolations)}
	t := rbtree.New[sortable.Int, int]()

	keys := drawKeys(rng, r.opts.Keys, r.opts.KeySpace)
	for _, k := range keys {
		r.tally(sortable.Int(k))
	}

	res.Inserted, res.BlackHeight = insertPhase(t, keys, chk)
	res.Height = t.Height()
	treeHeight.Observe(float64(res.Height))

	verifyPhase(t, keys, chk)

	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	res.Removed = removePhase(t, keys, chk)

	res.Duration = time.Since(start)
	res.Violations = chk.errs.Len()
	res.Err = logger.AnnotateError(chk.errs.GetError(), "trial", index, "seed", seed)

	trialDuration.Observe(res.Duration.Seconds())

	log := logger.Get(ctx)

	if res.Passed() {
		trials.WithLabelValues("passed").Inc()
		log.Debug("soak trial passed", "trial", index, "height", res.Height, "black_height", res.BlackHeight)
	} else {
		trials.WithLabelValues("failed").Inc()
		log.Error("soak trial failed", "trial", index, "violations", res.Violations, "error", res.Err)
	}

	return res
}

// insertPhase inserts keys, checking the rules after each insert. It returns the number
// of keys inserted and the final black height.
func insertPhase(t *tree, keys []int, chk *checker) (int, int) {
	var blackHeight int

	for i, k := range keys {
		if old := t.Insert(sortable.Int(k), valueFor(k)); old.NonEmpty() {
			chk.fail("contract", fmt.Errorf("%w: key %d returned %s", ErrInsertMismatch, k, old))
		}

		height, err := t.CheckRules()
		if err != nil {
			chk.fail(kindOf(err), fmt.Errorf("after insert %d of key %d: %w", i+1, k, err))

			continue
		}

		blackHeight = height
	}

	chk.ops("insert", len(keys))
	chk.ops("check", len(keys))

	if t.Len() != len(keys) {
		chk.fail("contract", fmt.Errorf("%w: len %d, inserted %d", ErrLenMismatch, t.Len(), len(keys)))
	}

	return len(keys), blackHeight
}

// verifyPhase checks lookups, traversal order and neighbor queries against the sorted keys.
func verifyPhase(t *tree, keys []int, chk *checker) {
	for _, k := range keys {
		got, ok := t.Find(sortable.Int(k)).Get()
		if !ok || got != valueFor(k) {
			chk.fail("contract", fmt.Errorf("%w: key %d", ErrLookupMismatch, k))
		}
	}

	chk.ops("find", len(keys))

	sorted := slices.Sorted(slices.Values(keys))

	walked := make([]int, 0, len(keys))
	for k := range t.All() {
		walked = append(walked, int(k))
	}

	if !slices.Equal(sorted, walked) {
		chk.fail("contract", fmt.Errorf("%w: %d keys walked, %d inserted", ErrTraversalMismatch, len(walked), len(sorted)))
	}

	for i, k := range sorted {
		pred := t.Smaller(sortable.Int(k))
		if (i == 0) != pred.Empty() || (i > 0 && int(pred.GetOrPanic().Key) != sorted[i-1]) {
			chk.fail("contract", fmt.Errorf("%w: predecessor of %d is %s", ErrNeighborMismatch, k, pred))
		}

		succ := t.Larger(sortable.Int(k))
		last := i == len(sorted)-1

		if last != succ.Empty() || (!last && int(succ.GetOrPanic().Key) != sorted[i+1]) {
			chk.fail("contract", fmt.Errorf("%w: successor of %d is %s", ErrNeighborMismatch, k, succ))
		}
	}

	chk.ops("neighbor", 2*len(sorted)) //nolint:mnd
}

// removePhase removes keys in the given order. Only ordering and the root color are
// checked here because removal does not restore the coloring rules.
func removePhase(t *tree, keys []int, chk *checker) int {
	removed := 0

	for i, k := range keys {
		key := sortable.Int(k)

		got, ok := t.Remove(key).Get()
		if !ok || got != valueFor(k) {
			chk.fail("contract", fmt.Errorf("%w: remove of key %d", ErrRemoveMismatch, k))
		} else {
			removed++
		}

		if t.Contains(key) {
			chk.fail("contract", fmt.Errorf("%w: key %d still present", ErrRemoveMismatch, k))
		}

		if t.Remove(key).NonEmpty() {
			chk.fail("contract", fmt.Errorf("%w: key %d removed twice", ErrRemoveMismatch, k))
		}

		if t.Root().Red() {
			chk.fail("root_red", fmt.Errorf("after removing key %d: %w", k, rbtree.ErrRootIsRed))
		}

		if (i+1)%orderCheckInterval == 0 {
			checkOrdering(t, chk)
		}
	}

	chk.ops("remove", 2*len(keys)) //nolint:mnd
	chk.ops("contains", len(keys))

	if t.Len() != 0 {
		chk.fail("contract", fmt.Errorf("%w: len %d after removing every key", ErrLenMismatch, t.Len()))
	}

	return removed
}

// orderCheckInterval is how many removals pass between full ordering scans.
const orderCheckInterval = 100

func checkOrdering(t *tree, chk *checker) {
	err := t.Audit()
	if err != nil && errors.Is(err, rbtree.ErrOrdering) {
		chk.fail("ordering", fmt.Errorf("during removal: %w", rbtree.ErrOrdering))
	}

	chk.ops("audit", 1)
}
