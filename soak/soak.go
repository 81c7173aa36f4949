// Package soak stresses rbtree with randomized trials run in parallel. Each trial owns its
// tree: it inserts a random set of distinct keys while checking the rules after every
// insert, verifies lookups and ordering, then removes every key in random order.
package soak

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	amperrors "github.com/amp-labs/amp-rbtree/errors"
	"github.com/amp-labs/amp-rbtree/logger"
	"github.com/amp-labs/amp-rbtree/maps"
	"github.com/amp-labs/amp-rbtree/rbtree"
	"github.com/amp-labs/amp-rbtree/sortable"
	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// ErrInvalidOptions is returned by Run for options it cannot satisfy.
var ErrInvalidOptions = errors.New("invalid soak options")

// maxReportedViolations caps the violations kept per trial.
const maxReportedViolations = 16

// Options controls a soak run.
type Options struct {
	// Trials is the number of independent trials.
	Trials int
	// Keys is the number of distinct keys each trial inserts.
	Keys int
	// KeySpace bounds keys to [0, KeySpace).
	KeySpace int
	// Seed makes the run reproducible. Zero picks a time-based seed.
	Seed uint64
	// Workers is the number of trials run at once.
	Workers int
}

func (o Options) validate() error {
	switch {
	case o.Trials <= 0:
		return fmt.Errorf("%w: trials %d", ErrInvalidOptions, o.Trials)
	case o.Keys <= 0:
		return fmt.Errorf("%w: keys %d", ErrInvalidOptions, o.Keys)
	case o.KeySpace < o.Keys:
		return fmt.Errorf("%w: key space %d smaller than keys %d", ErrInvalidOptions, o.KeySpace, o.Keys)
	case o.Workers <= 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidOptions, o.Workers)
	default:
		return nil
	}
}

// Report summarizes a run.
type Report struct {
	RunID      uuid.UUID
	Seed       uint64
	Trials     []TrialResult
	Operations int64
	Violations int64
	// DistinctKeys is the number of different keys drawn across all trials.
	DistinctKeys int
	// Draws is the total number of key draws across all trials, as tallied in the
	// shared key tree.
	Draws    int
	Duration time.Duration
}

// Failed reports whether any trial found a violation.
func (r *Report) Failed() bool {
	return r.Violations > 0
}

// Err joins the violations of every failed trial, or returns nil.
func (r *Report) Err() error {
	errs := &amperrors.Collection{}

	for _, tr := range r.Trials {
		errs.Add(tr.Err)
	}

	return errs.GetError()
}

// run holds the state shared by the trials of one Run call.
type run struct {
	opts       Options
	operations *atomic.Int64
	violations *atomic.Int64
	// drawn counts, for every key any trial drew, how many trials drew it.
	drawn *maps.ThreadSafeSortedMap[sortable.Int, int]
}

// Run executes opts.Trials trials on a pool of opts.Workers goroutines and returns a
// report. The error is non-nil only for invalid options or a cancelled context; rule
// violations are reported through Report.Failed and Report.Err.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano()) //nolint:gosec
	}

	report := &Report{
		RunID:  uuid.New(),
		Seed:   opts.Seed,
		Trials: make([]TrialResult, opts.Trials),
	}

	ctx = logger.With(ctx, "run", report.RunID.String())
	log := logger.Get(ctx)

	log.Info("soak run starting",
		"trials", opts.Trials, "keys", opts.Keys, "key_space", opts.KeySpace,
		"workers", opts.Workers, "seed", opts.Seed)

	state := &run{
		opts:       opts,
		operations: atomic.NewInt64(0),
		violations: atomic.NewInt64(0),
		drawn:      maps.NewThreadSafe[sortable.Int, int](rbtree.New[sortable.Int, int]()),
	}

	pool := pond.NewPool(opts.Workers)
	defer pool.StopAndWait()

	group := pool.NewGroup()
	start := time.Now()

	for i := range opts.Trials {
		group.SubmitErr(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			report.Trials[i] = state.trial(ctx, i)

			return nil
		})
	}

	waitErr := group.Wait()

	report.Duration = time.Since(start)
	report.Operations = state.operations.Load()
	report.Violations = state.violations.Load()
	report.DistinctKeys = state.drawn.Len()

	for _, count := range state.drawn.All() {
		report.Draws += count
	}

	if waitErr != nil {
		return report, waitErr
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}

	if report.Failed() {
		log.Error("soak run found violations", "violations", report.Violations, "error", report.Err())
	} else {
		log.Info("soak run passed", "operations", report.Operations, "duration", report.Duration)
	}

	return report, nil
}

// tally records one draw of key in the shared tree. Update and Insert each hold the lock
// on their own, so a concurrent first draw is folded back in after Insert.
func (r *run) tally(key sortable.Int) {
	increment := func(v *int) { *v++ }

	if r.drawn.Update(key, increment) {
		return
	}

	if prev, ok := r.drawn.Insert(key, 1).Get(); ok {
		r.drawn.Update(key, func(v *int) { *v += prev })
	}
}
