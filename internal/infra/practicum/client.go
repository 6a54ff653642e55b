// Package practicum implements the client for the homework review status API.
package practicum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
	"unicode/utf8"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/metrics"

	"github.com/sirupsen/logrus"
)

// DefaultEndpoint is the production homework status endpoint.
const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// Client queries the status endpoint on behalf of a single user.
// It never retries; the poll loop owns the retry policy.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     *logrus.Entry
}

func NewClient(endpoint, token string, timeout time.Duration, logger *logrus.Entry) *Client {
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Fetch requests the statuses changed since cursor (a Unix timestamp).
// The envelope is returned as decoded, without checking its shape.
func (c *Client) Fetch(ctx context.Context, cursor int64) (*homework.Envelope, error) {
	if cursor < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCursor, cursor)
	}

	started := time.Now()
	envelope, err := c.fetch(ctx, cursor)
	metrics.ObserveFetch(err, time.Since(started))
	return envelope, err
}

func (c *Client) fetch(ctx context.Context, cursor int64) (*homework.Envelope, error) {
	reqURL, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endpoint: %w", ErrTransport, err)
	}
	q := reqURL.Query()
	q.Set("from_date", strconv.FormatInt(cursor, 10))
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrTransport, err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("Accept", "application/json")

	c.logger.WithField("from_date", cursor).Debug("Requesting homework statuses")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrTransport, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"body":        truncate(string(body), 200),
		}).Warn("Status API returned non-200 response")
		return nil, &APIError{StatusCode: resp.StatusCode}
	}

	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return nil, fmt.Errorf("%w: response body is null", ErrDecode)
	}

	var envelope homework.Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &envelope, nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
