package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/aalvaropc/workoutlog/internal/domain"
)

// RequestIDHeader carries the client-generated id of each add request.
const RequestIDHeader = "X-Request-ID"

// BuildAddRequest builds the POST request that adds entry on the server at baseURL.
func BuildAddRequest(ctx context.Context, baseURL, path string, entry domain.WorkoutEntry, requestID string) (*http.Request, error) {
	target, err := joinURL(baseURL, path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidInput,
			Err:  err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}

	return req, nil
}

func joinURL(baseURL, path string) (string, error) {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		return "", errors.New("base url is empty")
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("base url must be absolute")
	}

	return u.JoinPath(path).String(), nil
}
