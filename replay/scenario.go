// Package replay runs scripted scenarios against an rbtree keyed by natural-order strings.
//
// A scenario is a YAML document:
//
//	name: neighbors
//	steps:
//	  - op: insert
//	    keys: [k10, k2, k1]
//	  - op: smaller
//	    key: k10
//	    expect: k2
//	  - op: remove
//	    key: k7
//	    absent: true
//	  - op: check
//
// Steps that carry expect or absent fail the run when the result differs.
package replay

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	amperrors "github.com/amp-labs/amp-rbtree/errors"
	"gopkg.in/yaml.v3"
)

var (
	ErrNameRequired    = errors.New("scenario name is required")
	ErrNoSteps         = errors.New("scenario has no steps")
	ErrUnknownOp       = errors.New("unknown op")
	ErrKeyRequired     = errors.New("op requires a key")
	ErrConflictingWant = errors.New("expect and absent are mutually exclusive")
	ErrExpectOnBatch   = errors.New("expect and absent need a single key")
	ErrExpectation     = errors.New("expectation failed")
)

// Op names a step.
type Op string

const (
	OpInsert   Op = "insert"
	OpRemove   Op = "remove"
	OpFind     Op = "find"
	OpContains Op = "contains"
	OpSmallest Op = "smallest"
	OpLargest  Op = "largest"
	OpSmaller  Op = "smaller"
	OpLarger   Op = "larger"
	OpKeys     Op = "keys"
	OpLen      Op = "len"
	OpCheck    Op = "check"
	OpClear    Op = "clear"
)

var knownOps = []Op{ //nolint:gochecknoglobals
	OpInsert, OpRemove, OpFind, OpContains, OpSmallest, OpLargest,
	OpSmaller, OpLarger, OpKeys, OpLen, OpCheck, OpClear,
}

// needsKey reports whether op reads Key. Insert and remove accept Keys instead.
func (o Op) needsKey() bool {
	switch o {
	case OpFind, OpContains, OpSmaller, OpLarger:
		return true
	default:
		return false
	}
}

func (o Op) takesKeys() bool {
	return o == OpInsert || o == OpRemove
}

// Step is one scripted operation.
//
// For insert, Value defaults to the key itself. Expect is compared against the value
// returned (insert, remove, find), the key found (smallest, largest, smaller, larger),
// "true"/"false" (contains), the decimal count (len) or the space separated keys (keys).
type Step struct {
	Op     Op       `yaml:"op"`
	Key    string   `yaml:"key,omitempty"`
	Keys   []string `yaml:"keys,omitempty"`
	Value  string   `yaml:"value,omitempty"`
	Expect *string  `yaml:"expect,omitempty"`
	Absent bool     `yaml:"absent,omitempty"`
}

// Scenario is a named list of steps.
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %q: %w", path, err)
	}

	return LoadFromBytes(data)
}

// LoadFromFS reads and validates a scenario from fsys, such as an embed.FS.
func LoadFromFS(fsys fs.FS, path string) (*Scenario, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario from FS: %w", err)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes parses and validates a YAML scenario.
func LoadFromBytes(data []byte) (*Scenario, error) {
	var sc Scenario

	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// Validate reports every malformed step, not only the first.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return ErrNameRequired
	}

	if len(s.Steps) == 0 {
		return ErrNoSteps
	}

	errs := &amperrors.Collection{}

	for i, step := range s.Steps {
		switch {
		case !slices.Contains(knownOps, step.Op):
			errs.Add(fmt.Errorf("step %d: %w: %q", i+1, ErrUnknownOp, step.Op))
		case step.Op.needsKey() && step.Key == "":
			errs.Add(fmt.Errorf("step %d (%s): %w", i+1, step.Op, ErrKeyRequired))
		case step.Op.takesKeys() && step.Key == "" && len(step.Keys) == 0:
			errs.Add(fmt.Errorf("step %d (%s): %w", i+1, step.Op, ErrKeyRequired))
		case step.Expect != nil && step.Absent:
			errs.Add(fmt.Errorf("step %d (%s): %w", i+1, step.Op, ErrConflictingWant))
		case len(step.Keys) > 0 && (step.Expect != nil || step.Absent):
			errs.Add(fmt.Errorf("step %d (%s): %w", i+1, step.Op, ErrExpectOnBatch))
		}
	}

	return errs.GetError()
}
