// Package watch runs the poll loop: fetch the gas price, print it, check the
// alert threshold, then sleep or exit.
//
// The loop sleeps a fixed interval after each poll completes and never
// retries or backs off. Every fetch failure is handled the same way: report
// it and keep going. It does not watch for cancellation; the process ends it.
package watch

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"time"

	"github.com/dando385/gas-watcher/internal/display"
	"github.com/dando385/gas-watcher/internal/gas"
	"github.com/dando385/gas-watcher/internal/stats"
)

// Fetcher returns the current gas price in wei. *rpc.Client implements it.
type Fetcher interface {
	GasPrice(ctx context.Context) (*big.Int, time.Duration, error)
}

// Options is the read-only run configuration.
type Options struct {
	// Interval between the end of one poll and the start of the next.
	// Zero means poll once and return.
	Interval time.Duration
	// Count limits the number of polls when Interval is set. Zero is unbounded.
	Count int
	// Alert is the threshold in gwei; nil disables alerts.
	Alert *float64
	// AsWei prints prices in wei instead of gwei.
	AsWei bool
}

// Result is the outcome of a single poll.
type Result struct {
	Wei     *big.Int
	Gwei    float64
	Tier    gas.Tier
	Alert   bool
	Latency time.Duration
	Err     error
}

// Runner owns the loop. Successful polls and alerts go to stdout, failures
// to stderr.
type Runner struct {
	fetcher Fetcher
	opts    Options
	stdout  io.Writer
	stderr  io.Writer
	logger  *slog.Logger
	sleep   func(time.Duration)
}

func NewRunner(fetcher Fetcher, opts Options, stdout, stderr io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		fetcher: fetcher,
		opts:    opts,
		stdout:  stdout,
		stderr:  stderr,
		logger:  logger,
		sleep:   time.Sleep,
	}
}

// Run polls until the single shot or Count is done and returns the session
// report. With no Count in watch mode it never returns.
func (r *Runner) Run(ctx context.Context) stats.Report {
	var session stats.Session
	for polls := 1; ; polls++ {
		res := r.Poll(ctx)
		if res.Err != nil {
			session.RecordFailure()
		} else {
			session.RecordPrice(res.Gwei, res.Latency, res.Alert)
		}

		if r.opts.Interval <= 0 {
			break
		}
		if r.opts.Count > 0 && polls >= r.opts.Count {
			break
		}
		r.sleep(r.opts.Interval)
	}
	return session.Report()
}

// Poll performs one fetch and prints its outcome.
func (r *Runner) Poll(ctx context.Context) Result {
	wei, latency, err := r.fetcher.GasPrice(ctx)
	if err != nil {
		r.logger.Debug("gas price fetch failed", "latency", latency, "error", err)
		r.write(r.stderr, &display.ErrorFormatter{Err: err})
		return Result{Latency: latency, Err: err}
	}

	gwei := gas.WeiToGwei(wei)
	res := Result{
		Wei:     wei,
		Gwei:    gwei,
		Tier:    gas.Classify(gwei),
		Latency: latency,
	}
	r.logger.Debug("gas price", "wei", wei.String(), "tier", res.Tier.String(), "latency", latency)

	r.write(r.stdout, &display.PriceFormatter{Wei: wei, AsWei: r.opts.AsWei})

	if r.opts.Alert != nil && gas.ExceedsThreshold(gwei, *r.opts.Alert) {
		res.Alert = true
		r.write(r.stdout, &display.AlertFormatter{Gwei: gwei, Threshold: *r.opts.Alert})
	}
	return res
}

func (r *Runner) write(w io.Writer, f display.Formatter) {
	if err := f.Format(w); err != nil {
		r.logger.Warn("failed to write output", "error", err)
	}
}
