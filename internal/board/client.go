package board

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sony/gobreaker"

	"github.com/promoops/campaigner/pkg/types"
)

// Compile-time interface satisfaction check.
var _ Source = (*Client)(nil)

// Client talks to the board platform's REST API. Transient errors are
// retried by the underlying client; a circuit breaker fails fast when
// the platform is down so webhook handling stays responsive.
type Client struct {
	http    *retryablehttp.Client
	breaker *gobreaker.CircuitBreaker
	baseURL string
	token   string
	logger  *slog.Logger
}

// NewClient creates a board API client.
func NewClient(baseURL, token string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.HTTPClient.Timeout = 30 * time.Second
	rc.Logger = nil

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "board-api",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("board api circuit state changed", "from", from.String(), "to", to.String())
		},
		// A missing board or item is a valid answer, not a platform
		// outage; it must not trip the breaker.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound)
		},
	})

	return &Client{
		http:    rc,
		breaker: cb,
		baseURL: baseURL,
		token:   token,
		logger:  logger,
	}
}

// GetSnapshot fetches a full board read: groups, items and cells.
func (c *Client) GetSnapshot(ctx context.Context, boardID string) (*types.Snapshot, error) {
	body, err := c.get(ctx, "/v2/boards/"+boardID)
	if err != nil {
		return nil, err
	}
	return parseSnapshot(body)
}

// GetItem fetches a single item with its cells and sub-records.
func (c *Client) GetItem(ctx context.Context, itemID string) (*types.Item, error) {
	body, err := c.get(ctx, "/v2/items/"+itemID)
	if err != nil {
		return nil, err
	}
	return parseItemBody(body)
}

// GetGroup fetches one group of a board by title. The placeholder
// title a board shows before a group is chosen is rejected up front.
func (c *Client) GetGroup(ctx context.Context, boardID, groupName string) (*types.Group, error) {
	if groupName == GroupNamePlaceholder {
		return nil, ErrGroupNameUnset
	}
	body, err := c.get(ctx, "/v2/boards/"+boardID+"/groups/"+url.PathEscape(groupName))
	if err != nil {
		return nil, err
	}
	return parseGroupBody(body)
}

// GetAssetURL resolves an uploaded asset ID to its public URL.
func (c *Client) GetAssetURL(ctx context.Context, assetID string) (string, error) {
	body, err := c.get(ctx, "/v2/assets/"+assetID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return parseAssetURL(body), nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	res, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Authorization", c.token)
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("board api request failed: %w", err)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode == http.StatusNotFound {
			return nil, ErrNotFound
		}
		if resp.StatusCode >= 400 {
			return nil, fmt.Errorf("board api status %d for %s", resp.StatusCode, path)
		}

		return io.ReadAll(resp.Body)
	})
	if err != nil {
		return nil, err
	}
	return res.([]byte), nil
}
