package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/nuroki/internal/client/models"
	"github.com/dmitrijs2005/nuroki/internal/client/tokens"
	"github.com/dmitrijs2005/nuroki/internal/common"
	"github.com/dmitrijs2005/nuroki/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	RefreshEndpoint = "/auth/refresh"

	maxResponseBody = 8 << 20
)

// Options configures an HTTPClient.
type Options struct {
	// BaseURL is prefixed to relative endpoints.
	BaseURL string
	// CoursesBaseURL serves courses, roadmaps and enrollments. Defaults to
	// BaseURL.
	CoursesBaseURL string
	// Timeout bounds each individual HTTP exchange. Zero means no timeout.
	Timeout time.Duration
	// CoalesceRefresh makes concurrent 401s share a single refresh call.
	CoalesceRefresh bool
	// HTTP is the underlying transport; http.DefaultClient when nil.
	HTTP   *http.Client
	Logger logging.Logger
}

// HTTPClient is the authenticated REST client. It attaches the stored access
// token to every request, and on a 401 refreshes the token pair once and
// retries the original request once.
//
// HTTPClient is safe for concurrent use.
type HTTPClient struct {
	baseURL        string
	coursesBaseURL string
	timeout        time.Duration
	coalesce       bool
	http           *http.Client
	tokens         *tokens.Store
	session        *Session
	log            logging.Logger
	refreshGroup   singleflight.Group
	newRequestID   func() string
}

// New builds a client over the given token store. The session starts
// Authenticated when the store already holds an access token.
func New(ctx context.Context, store *tokens.Store, opts Options) (*HTTPClient, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("base url is required")
	}
	if _, err := url.Parse(opts.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if opts.CoursesBaseURL == "" {
		opts.CoursesBaseURL = opts.BaseURL
	}
	if opts.HTTP == nil {
		opts.HTTP = http.DefaultClient
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	log := opts.Logger.With("component", "http")

	initial := Unauthenticated
	if _, ok := store.AccessToken(ctx); ok {
		initial = Authenticated
	}

	return &HTTPClient{
		baseURL:        strings.TrimRight(opts.BaseURL, "/"),
		coursesBaseURL: strings.TrimRight(opts.CoursesBaseURL, "/"),
		timeout:        opts.Timeout,
		coalesce:       opts.CoalesceRefresh,
		http:           opts.HTTP,
		tokens:         store,
		session:        NewSession(initial, log),
		log:            log,
		newRequestID:   uuid.NewString,
	}, nil
}

func (c *HTTPClient) Session() *Session { return c.session }

func (c *HTTPClient) Tokens() *tokens.Store { return c.tokens }

type requestOptions struct {
	header    http.Header
	query     url.Values
	anonymous bool
}

// RequestOption customizes a single request.
type RequestOption func(*requestOptions)

// WithHeader sets a request header. It overrides the defaults, but never the
// Authorization header of an authenticated request.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) { o.header.Set(key, value) }
}

// WithQuery adds query parameters to the endpoint.
func WithQuery(q url.Values) RequestOption {
	return func(o *requestOptions) {
		for k, vs := range q {
			for _, v := range vs {
				o.query.Add(k, v)
			}
		}
	}
}

// Anonymous sends the request without a bearer token; a 401 is then an
// ordinary HTTPError and does not trigger a refresh.
func Anonymous() RequestOption {
	return func(o *requestOptions) { o.anonymous = true }
}

// Request is the typed form of Do.
func Request[T any](ctx context.Context, c *HTTPClient, method, endpoint string, body any, opts ...RequestOption) (T, error) {
	var out T
	err := c.Do(ctx, method, endpoint, body, &out, opts...)
	return out, err
}

// Do sends body (JSON-encoded unless it is nil, []byte or json.RawMessage) to
// endpoint and decodes a 2xx JSON response into out. out may be nil.
// Relative endpoints are resolved against the base URL.
func (c *HTTPClient) Do(ctx context.Context, method, endpoint string, body, out any, opts ...RequestOption) error {
	ro := requestOptions{header: http.Header{}, query: url.Values{}}
	for _, opt := range opts {
		opt(&ro)
	}

	target, err := c.resolve(endpoint, ro.query)
	if err != nil {
		return err
	}

	payload, err := encodeBody(body)
	if err != nil {
		return fmt.Errorf("encode %s %s request: %w", method, endpoint, err)
	}

	var token string
	if !ro.anonymous {
		token, _ = c.tokens.AccessToken(ctx)
	}

	resp, err := c.send(ctx, method, target, payload, token, ro.header)
	if err != nil {
		return err
	}

	if resp.status == http.StatusUnauthorized && !ro.anonymous {
		fresh, err := c.refresh(ctx, token)
		if err != nil {
			return err
		}
		resp, err = c.send(ctx, method, target, payload, fresh, ro.header)
		if err != nil {
			return err
		}
		if resp.status == http.StatusUnauthorized {
			return c.expire(ctx, resp.httpError())
		}
	}

	if resp.status < 200 || resp.status > 299 {
		return resp.httpError()
	}

	if out == nil || len(bytes.TrimSpace(resp.body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, endpoint, err)
	}
	return nil
}

type response struct {
	status int
	body   []byte
}

func (r response) httpError() *HTTPError {
	return &HTTPError{Status: r.status, Body: strings.TrimSpace(string(r.body))}
}

func (c *HTTPClient) send(ctx context.Context, method, target string, payload []byte, token string, extra http.Header) (response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var rdr io.Reader
	if payload != nil {
		rdr = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, rdr)
	if err != nil {
		return response{}, fmt.Errorf("build request: %w", err)
	}

	requestID := c.newRequestID()
	ctx = logging.ContextWith(ctx, "request_id", requestID)
	req.Header.Set(common.ContentTypeHeaderName, common.JSONContentType)
	req.Header.Set(common.RequestIDHeaderName, requestID)
	for k, vs := range extra {
		if http.CanonicalHeaderKey(k) == common.AuthorizationHeaderName && token != "" {
			continue
		}
		req.Header[http.CanonicalHeaderKey(k)] = vs
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "url", target, "error", err)
		return response{}, &NetworkError{Method: method, Endpoint: target, Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBody))
	if err != nil {
		return response{}, &NetworkError{Method: method, Endpoint: target, Err: err}
	}

	c.log.Debug(ctx, "request finished",
		"method", method,
		"url", target,
		"status", res.StatusCode,
		"duration", time.Since(start),
	)
	return response{status: res.StatusCode, body: body}, nil
}

// refresh obtains a new access token after a 401 on a request sent with
// stale. With coalescing on, concurrent callers share one refresh call and a
// caller whose token was already replaced just picks up the new one.
func (c *HTTPClient) refresh(ctx context.Context, stale string) (string, error) {
	rt, ok := c.tokens.RefreshToken(ctx)
	if !ok {
		return "", c.expire(ctx, errors.New("no refresh token"))
	}

	if !c.coalesce {
		return c.doRefresh(ctx, rt)
	}

	ch := c.refreshGroup.DoChan(rt, func() (any, error) {
		shared := context.WithoutCancel(ctx)
		if current, ok := c.tokens.AccessToken(shared); ok && current != stale {
			return current, nil
		}
		return c.doRefresh(shared, rt)
	})
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return "", r.Err
		}
		return r.Val.(string), nil
	}
}

func (c *HTTPClient) doRefresh(ctx context.Context, refreshToken string) (string, error) {
	c.session.beginRefresh(ctx)

	var pair models.TokenPair
	err := c.Do(ctx, http.MethodPost, RefreshEndpoint, models.RefreshRequest{RefreshToken: refreshToken}, &pair, Anonymous())
	if err == nil && pair.AccessToken == "" {
		err = errors.New("refresh response carries no access token")
	}
	if err == nil {
		if pair.RefreshToken == "" {
			pair.RefreshToken = refreshToken
		}
		err = c.tokens.SaveTokens(ctx, pair.AccessToken, pair.RefreshToken)
	}
	if err != nil {
		c.session.endRefresh(ctx, false)
		c.log.Warn(ctx, "token refresh failed", "error", err)
		return "", c.expire(ctx, err)
	}

	c.session.endRefresh(ctx, true)
	c.log.Info(ctx, "access token refreshed")
	return pair.AccessToken, nil
}

// expire clears the tokens and ends the session.
func (c *HTTPClient) expire(ctx context.Context, cause error) error {
	if err := c.tokens.ClearTokens(ctx); err != nil {
		c.log.Error(ctx, "failed to clear tokens", "error", err)
	}
	_ = c.session.Transition(ctx, Unauthenticated)
	return &SessionExpiredError{Cause: cause}
}

func (c *HTTPClient) resolve(endpoint string, query url.Values) (string, error) {
	raw := endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		raw = c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// courses resolves a path on the courses backend.
func (c *HTTPClient) courses(path string) string {
	return c.coursesBaseURL + "/" + strings.TrimLeft(path, "/")
}

func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	default:
		return json.Marshal(body)
	}
}
