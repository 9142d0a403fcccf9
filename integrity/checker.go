// Package integrity validates the parent-child references declared during
// ingestion against the closed-world feature store.
//
// The check runs once, after all input files have been ingested, so that
// forward and cross-file references have had their chance to resolve. All
// violations are accumulated; the checker never stops at the first one.
package integrity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/semgff/semgff/store"
)

// ErrViolation is wrapped by Report.Err in strict mode.
var ErrViolation = errors.New("referential integrity violation")

// Mode is the integrity policy, consumed once at check time.
type Mode int

const (
	// ModeLenient excludes features with unresolved parents from
	// relation-triple emission but keeps their type and location triples.
	ModeLenient Mode = iota

	// ModeStrict surfaces the full violation list and marks the run as
	// failed. Graph construction still proceeds over the valid subgraph
	// unless the caller chooses to abort.
	ModeStrict
)

// ParseMode parses a configuration string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "lenient", "":
		return ModeLenient, nil
	case "strict":
		return ModeStrict, nil
	}
	return ModeLenient, fmt.Errorf("unknown integrity mode %q", s)
}

func (m Mode) String() string {
	if m == ModeStrict {
		return "strict"
	}
	return "lenient"
}

// Violation is one dangling parent reference.
type Violation struct {
	ChildID  string
	ParentID string
}

func (v Violation) String() string {
	return fmt.Sprintf("feature %q references missing parent %q", v.ChildID, v.ParentID)
}

// Report is the outcome of an integrity check.
type Report struct {
	mode       Mode
	violations []Violation
	invalid    map[store.Edge]struct{}
}

// Mode returns the policy the check ran under.
func (r *Report) Mode() Mode { return r.mode }

// Violations returns all collected violations, one per distinct
// (child, parent) pair, in first-seen order.
func (r *Report) Violations() []Violation {
	return append([]Violation(nil), r.violations...)
}

// OK reports whether the store passed the check.
func (r *Report) OK() bool { return len(r.violations) == 0 }

// Retained reports whether an edge survived the check. The graph builder
// must not emit relation triples for edges that did not.
func (r *Report) Retained(e store.Edge) bool {
	if r == nil {
		return true
	}
	_, bad := r.invalid[e]
	return !bad
}

// Err returns the run outcome under the report's mode: nil when the check
// passed or the mode is lenient, an error wrapping ErrViolation otherwise.
func (r *Report) Err() error {
	if r.OK() || r.mode != ModeStrict {
		return nil
	}
	return fmt.Errorf("%d %w(s)", len(r.violations), ErrViolation)
}

// Checker validates parent references against a feature store.
type Checker struct {
	mode   Mode
	logger *slog.Logger
}

// NewChecker returns a checker running under the given mode.
func NewChecker(mode Mode, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{mode: mode, logger: logger}
}

// Check confirms every declared edge resolves to a stored parent. The
// store must be fully populated: the checker requires a closed-world view.
func (c *Checker) Check(ctx context.Context, st store.Store) (*Report, error) {
	rep := &Report{
		mode:    c.mode,
		invalid: make(map[store.Edge]struct{}),
	}
	for e, err := range st.Edges(ctx) {
		if err != nil {
			return nil, fmt.Errorf("integrity check: %w", err)
		}
		if _, seen := rep.invalid[e]; seen {
			continue
		}
		_, err = st.Resolve(ctx, e.ParentID)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("integrity check: %w", err)
		}
		rep.invalid[e] = struct{}{}
		rep.violations = append(rep.violations, Violation{ChildID: e.ChildID, ParentID: e.ParentID})
		c.logger.Warn("dangling parent reference",
			slog.String("child", e.ChildID),
			slog.String("parent", e.ParentID))
	}
	return rep, nil
}
