// SPDX-License-Identifier: MIT

package homology

import (
	"log/slog"

	"github.com/katalvlaran/lvtopo/matrix"
)

// Option configures Betti, BettiNumbers, EulerCharacteristic and Analyze.
type Option func(*options)

type options struct {
	rank   []matrix.RankOption
	approx bool
	logger *slog.Logger
}

func gatherOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithApproxRank computes every rank with the randomized estimator at
// relative tolerance eps (see matrix.WithApproximate). Results are
// approximate. eps must be finite and > 0; anything else surfaces as
// matrix.ErrInvalidTolerance.
func WithApproxRank(eps float64) Option {
	return func(o *options) {
		o.approx = true
		o.rank = append(o.rank, matrix.WithApproximate(eps))
	}
}

// WithRankOptions forwards options to every matrix.Rank call.
func WithRankOptions(opts ...matrix.RankOption) Option {
	return func(o *options) { o.rank = append(o.rank, opts...) }
}

// WithLogger sets the logger for rank fallbacks (WARN) and per-rank details
// (DEBUG). nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
