package practicum

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_notification_bot/internal/domain/homework"
)

const (
	clientTimeout = 30 * time.Second
	maxBodySize   = 8 << 20
)

// Client queries the homework statuses endpoint of the Practicum API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

func NewClient(endpoint, token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: clientTimeout},
		endpoint:   endpoint,
		token:      token,
	}
}

// HomeworkStatuses fetches every review-status change since fromDate.
// Any response code other than 200 fails the call.
func (c *Client) HomeworkStatuses(ctx context.Context, fromDate int64) (*homework.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	q := url.Values{}
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("homework statuses request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", homework.ErrConnectionNot200, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read homework statuses response: %w", err)
	}

	return homework.ParseResponse(body)
}
