package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/osse101/BrandishSpin_Go/internal/domain"
	"github.com/osse101/BrandishSpin_Go/internal/logger"
	"github.com/osse101/BrandishSpin_Go/internal/signature"
)

// HTTPClient talks to a remote ledger gateway with HMAC-signed requests
type HTTPClient struct {
	endpoint string
	secret   string
	custody  string
	http     *http.Client
}

type response struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Amount  int64  `json:"amount"`
}

// NewHTTPClient creates a remote ledger client
func NewHTTPClient(endpoint, secret, custody string) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		secret:   secret,
		custody:  custody,
		http:     &http.Client{Timeout: DefaultHTTPTimeout},
	}
}

func (c *HTTPClient) Custody() string { return c.custody }

func (c *HTTPClient) BalanceOf(ctx context.Context, account string) (int64, error) {
	resp, err := c.call(ctx, map[string]string{
		"action":  ActionBalance,
		"account": account,
	})
	if err != nil {
		return 0, err
	}
	return resp.Amount, nil
}

func (c *HTTPClient) AllowanceOf(ctx context.Context, owner, spender string) (int64, error) {
	resp, err := c.call(ctx, map[string]string{
		"action":  ActionAllowance,
		"owner":   owner,
		"spender": spender,
	})
	if err != nil {
		return 0, err
	}
	return resp.Amount, nil
}

func (c *HTTPClient) Pull(ctx context.Context, from string, amount int64, reference string) error {
	_, err := c.call(ctx, map[string]string{
		"action":    ActionPull,
		"from":      from,
		"to":        c.custody,
		"amount":    strconv.FormatInt(amount, 10),
		"reference": reference,
	})
	return err
}

func (c *HTTPClient) Push(ctx context.Context, to string, amount int64, reference string) error {
	_, err := c.call(ctx, map[string]string{
		"action":    ActionPush,
		"from":      c.custody,
		"to":        to,
		"amount":    strconv.FormatInt(amount, 10),
		"reference": reference,
	})
	return err
}

func (c *HTTPClient) call(ctx context.Context, params map[string]string) (*response, error) {
	values := url.Values{}
	for k, v := range params {
		if v != "" {
			values.Set(k, v)
		}
	}
	values.Set(signature.ParamSignature, signature.Sign(c.secret, values))

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger endpoint: %w", err)
	}
	u.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.unconfirmed(ctx, params["action"], fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	// a gateway error says nothing about whether the ledger applied the action
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, c.unconfirmed(ctx, params["action"], fmt.Errorf("gateway status %d", resp.StatusCode))
	}

	var parsed response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, c.unconfirmed(ctx, params["action"], fmt.Errorf("response decode failed: %w", err))
	}

	if resp.StatusCode != http.StatusOK || parsed.Status != StatusOK {
		logger.FromContext(ctx).Warn(LogMsgLedgerRejected,
			"action", params["action"], "status_code", resp.StatusCode, "message", parsed.Message)
		return nil, fmt.Errorf("%w: %s", domain.ErrTransferRejected, parsed.Message)
	}

	return &parsed, nil
}

func (c *HTTPClient) unconfirmed(ctx context.Context, action string, err error) error {
	logger.FromContext(ctx).Error(LogMsgLedgerUnconfirmed, "action", action, "error", err)
	return fmt.Errorf("%w: ledger %s %w", domain.ErrLedgerUnconfirmed, action, err)
}
