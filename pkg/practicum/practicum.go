package practicum

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

const (
	QueryKeyFromDate    = "from_date"
	HeaderAuthorization = "Authorization"
)

var (
	ErrConnection = errors.New("practicum api request failed")
)

type Client interface {
	// HomeworkStatuses returns the raw JSON document with the homeworks
	// updated since fromDate (unix seconds).
	HomeworkStatuses(ctx context.Context, fromDate int64) ([]byte, error)
}

type client struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

func NewClient(endpoint, token string, timeout time.Duration) Client {
	return &client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		token:      token,
	}
}

func (c *client) HomeworkStatuses(ctx context.Context, fromDate int64) ([]byte, error) {
	requestURL, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: url.Parse: %v", ErrConnection, err)
	}
	query := requestURL.Query()
	query.Set(QueryKeyFromDate, strconv.FormatInt(fromDate, 10))
	requestURL.RawQuery = query.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: http.NewRequestWithContext: %v", ErrConnection, err)
	}

	request.Header.Set(HeaderAuthorization, "OAuth "+c.token)
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: httpClient.Do: %v", ErrConnection, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: io.ReadAll (response.Body): %v", ErrConnection, err)
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrConnection, response.StatusCode)
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: response body is not a valid json", ErrConnection)
	}

	return body, nil
}
