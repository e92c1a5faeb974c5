// Package stats aggregates the readings of a watch session: gas price range
// and request latency percentiles.
package stats

import (
	"cmp"
	"math"
	"slices"
	"time"
)

// Tail holds nearest-rank percentiles of a sample set.
type Tail[T cmp.Ordered] struct {
	P50, P95, Max T
}

// CalculateTail returns P50, P95 and Max of samples without mutating them.
// With few samples P95 equals Max, which is the expected nearest-rank result.
func CalculateTail[T cmp.Ordered](samples []T) Tail[T] {
	if len(samples) == 0 {
		return Tail[T]{}
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	return Tail[T]{
		P50: Percentile(sorted, 0.50),
		P95: Percentile(sorted, 0.95),
		Max: sorted[len(sorted)-1],
	}
}

// Percentile returns the nearest-rank percentile p (0..1) of an ascending
// slice: index = ceil(n*p) - 1, clamped to [0, n-1].
func Percentile[T cmp.Ordered](sorted []T, p float64) T {
	var zero T
	n := len(sorted)
	if n == 0 {
		return zero
	}
	index := int(math.Ceil(float64(n)*p)) - 1
	index = max(0, min(index, n-1))
	return sorted[index]
}

// Session collects poll outcomes. The zero value is ready to use.
type Session struct {
	prices    []float64
	latencies []time.Duration
	failures  int
	alerts    int
}

// RecordPrice adds a successful reading in gwei.
func (s *Session) RecordPrice(gwei float64, latency time.Duration, alert bool) {
	s.prices = append(s.prices, gwei)
	s.latencies = append(s.latencies, latency)
	if alert {
		s.alerts++
	}
}

// RecordFailure counts a failed poll. Failed requests do not contribute
// latency samples since many fail before reaching the node.
func (s *Session) RecordFailure() {
	s.failures++
}

// Report is a snapshot of a Session.
type Report struct {
	Polls     int
	Failures  int
	Alerts    int
	MinGwei   float64
	MeanGwei  float64
	MaxGwei   float64
	Latency   Tail[time.Duration]
	Successes int
}

func (s *Session) Report() Report {
	r := Report{
		Polls:     len(s.prices) + s.failures,
		Failures:  s.failures,
		Alerts:    s.alerts,
		Successes: len(s.prices),
		Latency:   CalculateTail(s.latencies),
	}
	if len(s.prices) == 0 {
		return r
	}

	r.MinGwei, r.MaxGwei = slices.Min(s.prices), slices.Max(s.prices)
	var sum float64
	for _, p := range s.prices {
		sum += p
	}
	r.MeanGwei = sum / float64(len(s.prices))
	return r
}
