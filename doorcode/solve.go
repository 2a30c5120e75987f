package doorcode

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/keypadchain/cost"
	"github.com/katalvlaran/keypadchain/transition"
)

var tracer = otel.Tracer("github.com/katalvlaran/keypadchain/doorcode")

// Result is the outcome for a single code.
type Result struct {
	Code    Code
	Presses int64
	Score   int64
}

// Report collects the results for one chain length.
type Report struct {
	Variant  string
	MaxDepth int
	Results  []Result
	Total    int64
	Stats    cost.Stats
}

// Variant names one chain length to evaluate.
type Variant struct {
	Name     string
	MaxDepth int
}

// Options holds the ambient collaborators handed to every evaluator.
type Options struct {
	Logger     *slog.Logger
	Registerer prometheus.Registerer
}

// Option configures Solve and RunVariants.
type Option func(*Options)

// DefaultOptions returns a discarding logger and no metrics.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithLogger sets the structured logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRegisterer forwards cost metrics to r.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *Options) {
		o.Registerer = r
	}
}

// Solve evaluates every code at chain length maxDepth with a fresh evaluator
// and sums the scores. ctx is checked between codes.
func Solve(ctx context.Context, table *transition.Table, codeList []Code, maxDepth int, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	ctx, span := tracer.Start(ctx, "doorcode.Solve", trace.WithAttributes(
		attribute.Int("keypadchain.max_depth", maxDepth),
		attribute.Int("keypadchain.codes", len(codeList)),
	))
	defer span.End()

	rep, err := solve(ctx, table, codeList, maxDepth, o)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int64("keypadchain.total", rep.Total))
	return rep, nil
}

func solve(ctx context.Context, table *transition.Table, codeList []Code, maxDepth int, o Options) (*Report, error) {
	if len(codeList) == 0 {
		return nil, ErrNoCodes
	}
	e, err := cost.New(table,
		cost.WithMaxDepth(maxDepth),
		cost.WithLogger(o.Logger),
		cost.WithRegisterer(o.Registerer),
	)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		MaxDepth: maxDepth,
		Results:  make([]Result, 0, len(codeList)),
	}
	for _, c := range codeList {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		presses, err := e.Cost(string(c), 0)
		if err != nil {
			return nil, fmt.Errorf("doorcode: code %s: %w", c, err)
		}
		score, err := Score(presses, c)
		if err != nil {
			return nil, fmt.Errorf("doorcode: code %s: %w", c, err)
		}
		if score > math.MaxInt64-rep.Total {
			return nil, fmt.Errorf("%w: total after code %s", ErrOverflow, c)
		}
		res := Result{Code: c, Presses: presses, Score: score}
		rep.Results = append(rep.Results, res)
		rep.Total += res.Score

		o.Logger.Info("code solved",
			slog.String("code", string(c)),
			slog.Int("max_depth", maxDepth),
			slog.Int64("presses", res.Presses),
			slog.Int64("score", res.Score),
		)
	}
	rep.Stats = e.Stats()

	return rep, nil
}

// RunVariants solves codeList once per variant, concurrently. Each goroutine
// owns its evaluator; only the read-only table is shared. Reports come back in
// variant order. The first failure cancels the remaining variants.
func RunVariants(ctx context.Context, table *transition.Table, codeList []Code, variants []Variant, opts ...Option) ([]*Report, error) {
	if len(codeList) == 0 {
		return nil, ErrNoCodes
	}
	reports := make([]*Report, len(variants))
	g, gctx := errgroup.WithContext(ctx)
	for i, v := range variants {
		i, v := i, v
		g.Go(func() error {
			rep, err := Solve(gctx, table, codeList, v.MaxDepth, opts...)
			if err != nil {
				return fmt.Errorf("variant %q: %w", v.Name, err)
			}
			rep.Variant = v.Name
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
