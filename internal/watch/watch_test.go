package watch

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dando385/gas-watcher/internal/display"
	"github.com/dando385/gas-watcher/internal/gas"
	"github.com/dando385/gas-watcher/internal/rpc"
)

func init() {
	display.DisableColor()
}

type fetchResult struct {
	wei int64
	err error
}

// scriptedFetcher replays results in order and repeats the last one.
type scriptedFetcher struct {
	results []fetchResult
	calls   int
}

func (f *scriptedFetcher) GasPrice(ctx context.Context) (*big.Int, time.Duration, error) {
	i := f.calls
	if i >= len(f.results) {
		i = len(f.results) - 1
	}
	f.calls++
	r := f.results[i]
	if r.err != nil {
		return nil, time.Millisecond, r.err
	}
	return big.NewInt(r.wei), time.Millisecond, nil
}

func newTestRunner(f Fetcher, opts Options) (*Runner, *bytes.Buffer, *bytes.Buffer, *[]time.Duration) {
	var stdout, stderr bytes.Buffer
	var sleeps []time.Duration
	r := NewRunner(f, opts, &stdout, &stderr, nil)
	r.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }
	return r, &stdout, &stderr, &sleeps
}

func alertAt(v float64) *float64 { return &v }

func TestRunSingleShot(t *testing.T) {
	f := &scriptedFetcher{results: []fetchResult{{wei: 1_000_000_000}}}
	r, stdout, stderr, sleeps := newTestRunner(f, Options{})

	summary := r.Run(context.Background())

	if summary.Polls != 1 || f.calls != 1 {
		t.Errorf("polls = %d, calls = %d, want 1", summary.Polls, f.calls)
	}
	if len(*sleeps) != 0 {
		t.Errorf("single shot slept %d times", len(*sleeps))
	}
	if stdout.String() != "🟢 Gas Price: 1.00 gwei\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", stderr.String())
	}
}

func TestRunSingleShotWei(t *testing.T) {
	f := &scriptedFetcher{results: []fetchResult{{wei: 1_000_000_000}}}
	r, stdout, _, _ := newTestRunner(f, Options{AsWei: true})

	r.Run(context.Background())

	if stdout.String() != "🟢 Gas Price: 1000000000 wei\n" {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunSingleShotFailure(t *testing.T) {
	f := &scriptedFetcher{results: []fetchResult{{err: errors.New("RPC error: rate limited")}}}
	r, stdout, stderr, _ := newTestRunner(f, Options{})

	summary := r.Run(context.Background())

	if summary.Polls != 1 || summary.Failures != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
	if !strings.Contains(stderr.String(), "rate limited") {
		t.Errorf("stderr = %q, want rate limited message", stderr.String())
	}
}

func TestRunContinuesAfterFailures(t *testing.T) {
	f := &scriptedFetcher{results: []fetchResult{
		{err: errors.New("RPC error: rate limited")},
		{err: errors.New("transport error")},
		{wei: 35_000_000_000},
	}}
	r, stdout, stderr, sleeps := newTestRunner(f, Options{Interval: 12 * time.Second, Count: 4})

	summary := r.Run(context.Background())

	if summary.Polls != 4 || summary.Failures != 2 {
		t.Errorf("summary = %+v, want 4 polls and 2 failures", summary)
	}
	if summary.Successes != 2 || summary.MinGwei != 35 || summary.MaxGwei != 35 {
		t.Errorf("price stats = %+v", summary)
	}
	if len(*sleeps) != 3 {
		t.Fatalf("slept %d times, want 3", len(*sleeps))
	}
	for _, d := range *sleeps {
		if d != 12*time.Second {
			t.Errorf("slept %s, want fixed 12s", d)
		}
	}
	if strings.Count(stderr.String(), "Error fetching gas price") != 2 {
		t.Errorf("stderr = %q", stderr.String())
	}
	if strings.Count(stdout.String(), "🟠 Gas Price: 35.00 gwei") != 2 {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunAlert(t *testing.T) {
	tests := []struct {
		name      string
		wei       int64
		threshold float64
		wantAlert bool
	}{
		{"above", 50_010_000_000, 50, true},
		{"equal is not above", 50_000_000_000, 50, false},
		{"below", 20_000_000_000, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &scriptedFetcher{results: []fetchResult{{wei: tt.wei}}}
			r, stdout, _, _ := newTestRunner(f, Options{Alert: alertAt(tt.threshold)})

			res := r.Poll(context.Background())

			if res.Alert != tt.wantAlert {
				t.Errorf("Alert = %v, want %v", res.Alert, tt.wantAlert)
			}
			if got := strings.Contains(stdout.String(), "ALERT"); got != tt.wantAlert {
				t.Errorf("alert line printed = %v, want %v: %q", got, tt.wantAlert, stdout.String())
			}
		})
	}
}

func TestAlertUsesGweiWhenDisplayingWei(t *testing.T) {
	f := &scriptedFetcher{results: []fetchResult{{wei: 150_000_000_000}}}
	r, stdout, _, _ := newTestRunner(f, Options{AsWei: true, Alert: alertAt(100)})

	r.Run(context.Background())

	want := "🔴 Gas Price: 150000000000 wei\n⚠️  ALERT: Gas price (150.00 gwei) exceeds threshold (100.00 gwei)!\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestPollResult(t *testing.T) {
	f := &scriptedFetcher{results: []fetchResult{{wei: 10_000_000_000}}}
	r, _, _, _ := newTestRunner(f, Options{})

	res := r.Poll(context.Background())

	if res.Err != nil {
		t.Fatal(res.Err)
	}
	if res.Gwei != 10 || res.Tier != gas.TierNormal {
		t.Errorf("result = %+v, want 10 gwei normal", res)
	}
}

// Against a node that rate limits every call, watch mode keeps polling and
// surfaces the node's message each time.
func TestRunAgainstRateLimitedNode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"error":{"message":"rate limited"}}`)
	}))
	defer srv.Close()

	client := rpc.NewClient(rpc.ClientConfig{Name: "test", URL: srv.URL})
	r, _, stderr, _ := newTestRunner(client, Options{Interval: time.Second, Count: 3})

	summary := r.Run(context.Background())

	if summary.Polls != 3 || summary.Failures != 3 {
		t.Errorf("summary = %+v, want 3 failed polls", summary)
	}
	if strings.Count(stderr.String(), "RPC error: rate limited") != 3 {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunAgainstNode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"jsonrpc":"2.0","id":1,"result":"0x3b9aca00"}`)
	}))
	defer srv.Close()

	client := rpc.NewClient(rpc.ClientConfig{Name: "test", URL: srv.URL})

	for _, tt := range []struct {
		asWei bool
		want  string
	}{
		{true, "🟢 Gas Price: 1000000000 wei\n"},
		{false, "🟢 Gas Price: 1.00 gwei\n"},
	} {
		r, stdout, _, _ := newTestRunner(client, Options{AsWei: tt.asWei})
		r.Run(context.Background())
		if stdout.String() != tt.want {
			t.Errorf("asWei=%v: stdout = %q, want %q", tt.asWei, stdout.String(), tt.want)
		}
	}
}
