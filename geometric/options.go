// SPDX-License-Identifier: MIT

package geometric

import (
	"context"
	"fmt"
	"log/slog"
)

// DefaultMaxSimplexSize means "no limit": subsets of every size are inspected.
const DefaultMaxSimplexSize = 0

// Option configures a Builder. Invalid values are recorded and returned by
// the constructor as ErrOptionViolation.
type Option func(*options)

type options struct {
	dist      DistanceFunc
	criterion Criterion
	maxSize   int
	logger    *slog.Logger
	ctx       context.Context
	progress  func(done, total int64)
	err       error
}

func defaultOptions() options {
	return options{
		dist:      Euclidean,
		criterion: Circumradius,
		maxSize:   DefaultMaxSimplexSize,
		logger:    slog.Default(),
		ctx:       context.Background(),
		progress:  func(int64, int64) {},
	}
}

func (o *options) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithDistance replaces the default Euclidean distance.
func WithDistance(dist DistanceFunc) Option {
	return func(o *options) {
		if dist == nil {
			o.fail("nil DistanceFunc")
			return
		}
		o.dist = dist
	}
}

// WithCriterion replaces the default Circumradius criterion, e.g. with Diameter.
func WithCriterion(c Criterion) Option {
	return func(o *options) {
		if c == nil {
			o.fail("nil Criterion")
			return
		}
		o.criterion = c
	}
}

// WithMaxSimplexSize inspects only subsets of at most k points.
//
//	k ≥ 1: limit subset size to k (k = 1 keeps only the points)
//	k == 0: no limit
//	k < 0: invalid option → ErrOptionViolation
func WithMaxSimplexSize(k int) Option {
	return func(o *options) {
		if k < 0 {
			o.fail("max simplex size cannot be negative (%d)", k)
			return
		}
		o.maxSize = k
	}
}

// WithLogger sets the logger for degenerate-geometry records (DEBUG) and the
// enumeration summary. nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithContext makes enumeration cancellable; the context is checked once per subset.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithProgress registers a callback invoked after every inspected subset of
// size ≥ 2 with the number done so far and the total to inspect.
func WithProgress(fn func(done, total int64)) Option {
	return func(o *options) {
		if fn != nil {
			o.progress = fn
		}
	}
}
