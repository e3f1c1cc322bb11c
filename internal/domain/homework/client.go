package homework

import "context"

// Client fetches every review-status change that happened since fromDate
// (Unix seconds). This decouples the polling logic from the HTTP transport.
type Client interface {
	HomeworkStatuses(ctx context.Context, fromDate int64) (*Response, error)
}
