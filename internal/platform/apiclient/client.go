package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"planwise/internal/platform/id"
)

const maxBodyBytes = 4 << 20

// Error is returned for any non-2xx response. Message is the body's "error"
// field, or "HTTP <status>" when the body carries none.
type Error struct {
	Status  int
	Path    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// StatusOf reports the HTTP status behind err, or 0 for transport failures.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsStatus reports whether err (or its cause) is an API error with the code.
func IsStatus(err error, code int) bool {
	if apiErr, ok := errors.Cause(err).(*Error); ok {
		return apiErr.Status == code
	}
	return StatusOf(err) == code
}

type Client struct {
	baseURL string
	http    *http.Client
	ids     id.Generator
	log     zerolog.Logger
}

func New(baseURL string, timeout time.Duration, ids id.Generator, log zerolog.Logger) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout}, ids, log)
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client, ids id.Generator, log zerolog.Logger) *Client {
	if ids == nil {
		ids = id.RandomHex{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		ids:     ids,
		log:     log,
	}
}

// Get issues a GET with the non-empty query values and decodes into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if encoded := compact(query).Encode(); encoded != "" {
		target += "?" + encoded
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errors.Wrap(err, "creating request")
	}
	return c.do(req, path, out)
}

// Post sends body as JSON and decodes the reply into out.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "marshaling request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "creating request")
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, path string, out any) error {
	requestID := c.ids.New()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", req.Method).Str("path", path).Str("request_id", requestID).Msg("request failed")
		return errors.Wrapf(err, "request %s", path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	c.log.Debug().
		Str("method", req.Method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(started)).
		Str("request_id", requestID).
		Msg("api call")

	// A body that is not JSON is treated as an empty object.
	if !json.Valid(raw) {
		raw = []byte("{}")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode, Path: path, Message: errorMessage(raw, resp.StatusCode)}
		c.log.Warn().Str("path", path).Int("status", resp.StatusCode).Str("error", apiErr.Message).Str("request_id", requestID).Msg("api error")
		return apiErr
	}
	if out == nil {
		return nil
	}
	return decodeInto(raw, out, path)
}

// decodeInto sets out only on a full decode. Shape mismatches (e.g. a bare
// array or null) leave out zeroed, as if the body were an empty object.
func decodeInto(raw []byte, out any, path string) error {
	target := reflect.ValueOf(out)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return errors.Errorf("decode %s: need a non-nil pointer, got %T", path, out)
	}
	fresh := reflect.New(target.Type().Elem())
	if err := json.Unmarshal(raw, fresh.Interface()); err != nil {
		target.Elem().SetZero()
		return nil
	}
	target.Elem().Set(fresh.Elem())
	return nil
}

func errorMessage(raw []byte, status int) string {
	body := struct {
		Error Text `json:"error"`
	}{}
	_ = json.Unmarshal(raw, &body)
	if msg := strings.TrimSpace(body.Error.String()); msg != "" {
		return msg
	}
	return fmt.Sprintf("HTTP %d", status)
}

func compact(query url.Values) url.Values {
	out := url.Values{}
	for key, values := range query {
		for _, v := range values {
			if strings.TrimSpace(v) != "" {
				out.Add(key, v)
			}
		}
	}
	return out
}
