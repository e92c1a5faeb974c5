package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"net"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single gas price request end to end.
const DefaultTimeout = 10 * time.Second

// ClientConfig holds the settings for a Client.
type ClientConfig struct {
	Name    string
	URL     string
	Timeout time.Duration // DefaultTimeout when zero
	Logger  *slog.Logger  // discarded when nil
}

// Client sends JSON-RPC requests to a single endpoint. It makes exactly one
// attempt per call: failures are returned to the caller, never retried.
type Client struct {
	name       string
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		name:       cfg.Name,
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With("provider", cfg.Name),
	}
}

func (c *Client) Name() string { return c.name }

func (c *Client) URL() string { return c.url }

// Call executes one JSON-RPC request and returns the decoded envelope along
// with the round-trip latency. A response carrying an error object is
// returned as an ErrorTypeRPC error even if it also carries a result.
func (c *Client) Call(ctx context.Context, method string, params ...interface{}) (*Response, time.Duration, error) {
	body, err := json.Marshal(NewRequest(method, params...))
	if err != nil {
		return nil, 0, fmt.Errorf("encode request: %w", err)
	}

	start := time.Now()
	resp, err := c.doRequest(ctx, body)
	latency := time.Since(start)

	if err != nil {
		c.logger.Debug("rpc call failed", "method", method, "latency", latency, "error", err)
		return nil, latency, err
	}
	c.logger.Debug("rpc call", "method", method, "latency", latency)
	return resp, latency, nil
}

func (c *Client) doRequest(ctx context.Context, body []byte) (*Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, transportError("invalid request", err, false)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, transportError("request failed", err, isTimeout(err))
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, transportError(fmt.Sprintf("HTTP %d", httpResp.StatusCode), nil, false)
	}

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, transportError("read response", err, isTimeout(err))
	}

	var resp Response
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, decodeError(err)
	}

	if resp.Error != nil {
		return nil, rpcError(resp.Error)
	}

	return &resp, nil
}

// GasPrice calls eth_gasPrice and returns the current gas price in wei.
func (c *Client) GasPrice(ctx context.Context) (*big.Int, time.Duration, error) {
	resp, latency, err := c.Call(ctx, MethodGasPrice)
	if err != nil {
		return nil, latency, err
	}

	if !resp.HasResult() {
		return nil, latency, missingResultError()
	}

	var hexStr string
	if err := json.Unmarshal(resp.Result, &hexStr); err != nil {
		return nil, latency, parseError("gas price result is not a string", err)
	}

	price, err := ParseHexQuantity(hexStr)
	if err != nil {
		return nil, latency, parseError("invalid gas price", err)
	}
	return price, latency, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
