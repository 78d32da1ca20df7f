// Package plaid is a minimal Plaid Sandbox client used to seed opening
// balances for the simulated businesses.
package plaid

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"bitbucket.org/mmdatafocus/forecast_backend/config"
)

const (
	SandboxHost = "https://sandbox.plaid.com"

	// Chase in Sandbox; any institution works for balance pulls.
	DefaultInstitutionID = "ins_109508"
)

type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	clientID   string
	secret     string
	host       string
	logger     *logrus.Logger
}

// NewClientFromEnv builds a sandbox client from PLAID_CLIENT_ID and
// PLAID_SECRET; PLAID_HOST overrides the sandbox host.
func NewClientFromEnv() (*Client, error) {
	clientID := strings.TrimSpace(os.Getenv("PLAID_CLIENT_ID"))
	secret := strings.TrimSpace(os.Getenv("PLAID_SECRET"))
	if clientID == "" || secret == "" {
		return nil, errors.New("plaid: PLAID_CLIENT_ID and PLAID_SECRET must be set")
	}
	host := strings.TrimSpace(os.Getenv("PLAID_HOST"))
	if host == "" {
		host = SandboxHost
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(time.Second), 5), // 5 requests per second
		clientID:   clientID,
		secret:     secret,
		host:       host,
		logger:     config.GetLogger(),
	}, nil
}

// SandboxPublicToken creates a sandbox item at the institution and returns
// its public token. The transactions product brings balances too.
func (c *Client) SandboxPublicToken(ctx context.Context, institutionID string) (string, error) {
	if institutionID == "" {
		institutionID = DefaultInstitutionID
	}
	var resp sandboxPublicTokenCreateResponse
	err := c.post(ctx, "/sandbox/public_token/create", sandboxPublicTokenCreateRequest{
		ClientID:        c.clientID,
		Secret:          c.secret,
		InstitutionID:   institutionID,
		InitialProducts: []string{"transactions"},
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.PublicToken, nil
}

// ExchangePublicToken swaps a public token for an access token.
func (c *Client) ExchangePublicToken(ctx context.Context, publicToken string) (string, error) {
	var resp itemPublicTokenExchangeResponse
	err := c.post(ctx, "/item/public_token/exchange", itemPublicTokenExchangeRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		PublicToken: publicToken,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// GetAccounts returns the item's accounts with balances.
func (c *Client) GetAccounts(ctx context.Context, accessToken string) ([]Account, error) {
	var resp accountsGetResponse
	err := c.post(ctx, "/accounts/get", accountsGetRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", path, err)
	}

	var respBody []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+path, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("HTTP request failed: %w", err)
		}
		defer resp.Body.Close()

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if resp.StatusCode != http.StatusOK {
			var apiErr apiError
			if json.Unmarshal(respBody, &apiErr) == nil && apiErr.ErrorCode != "" {
				err = fmt.Errorf("plaid %s: %s (%s)", path, apiErr.ErrorMessage, apiErr.ErrorCode)
				// 4xx means the request itself is bad; retrying won't help.
				if resp.StatusCode >= 400 && resp.StatusCode < 500 {
					return backoff.Permanent(err)
				}
				return err
			}
			return fmt.Errorf("plaid %s: non-200 status code %d", path, resp.StatusCode)
		}
		return nil
	}

	backoffStrategy := backoff.NewExponentialBackOff()
	backoffStrategy.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(operation, backoff.WithContext(backoffStrategy, ctx)); err != nil {
		config.LogError(c.logger, "plaid", "post", path, nil, err)
		return fmt.Errorf("after retries: %w", err)
	}
	return json.Unmarshal(respBody, out)
}
