// Package client is the typed HTTP client of the portfolio API used by the
// admin console and the public page composer.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenSource yields the current admin token. It is read on every admin
// request so a login or logout takes effect immediately.
type TokenSource interface {
	Token() string
}

// DefaultSubject is the owner whose portfolio is served by default.
const DefaultSubject int64 = 1

type Client struct {
	baseURL        string
	httpDo         *http.Client
	tokens         TokenSource
	subject        int64
	onUnauthorized func()
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpDo = hc
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpDo.Timeout = d }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithSubject sets the owner id used in /users/{id}/... paths.
func WithSubject(id int64) Option {
	return func(c *Client) { c.subject = id }
}

// WithUnauthorizedHandler registers fn to run whenever the API answers 401.
func WithUnauthorizedHandler(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New builds a client for the API rooted at baseURL, e.g. http://localhost:8080/api.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpDo:  &http.Client{Timeout: 15 * time.Second},
		subject: DefaultSubject,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Subject() int64 { return c.subject }

// SetUnauthorizedHandler replaces the 401 callback after construction; the
// admin shell needs the client before it can hand out its own logout.
func (c *Client) SetUnauthorizedHandler(fn func()) { c.onUnauthorized = fn }

// RequestError is a non-2xx answer of the API.
type RequestError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("api http %d: %s", e.Status, e.Message)
}

// TransportError means the request never got an HTTP answer.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "api transport: " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// call describes one request. auth attaches the admin token.
type call struct {
	method      string
	path        string
	query       url.Values
	body        any
	raw         io.Reader
	contentType string
	auth        bool
}

func (c *Client) userPath(format string, args ...any) string {
	return fmt.Sprintf("/users/%d", c.subject) + fmt.Sprintf(format, args...)
}

func (c *Client) do(ctx context.Context, r call, out any) error {
	endpoint := c.baseURL + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	var body io.Reader = r.raw
	contentType := r.contentType
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	authed := false
	if r.auth && c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Token "+tok)
			authed = true
		}
	}

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// a 401 without a token (bad login) says nothing about the session
		if resp.StatusCode == http.StatusUnauthorized && authed && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return decodeError(resp.StatusCode, data)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", r.method, r.path, err)
	}
	return nil
}

type errorBody struct {
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Detail  string            `json:"detail"`
	Errors  map[string]string `json:"errors"`
}

func decodeError(status int, data []byte) *RequestError {
	e := &RequestError{Status: status}
	var body errorBody
	if json.Unmarshal(data, &body) == nil {
		for _, m := range []string{body.Message, body.Error, body.Detail} {
			if strings.TrimSpace(m) != "" {
				e.Message = m
				break
			}
		}
		e.Fields = body.Errors
	}
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}

// List is a decoded collection answer.
type List[T any] struct {
	Items      []T
	TotalPages int
}

type envelope[T any] struct {
	Results    []T `json:"results"`
	TotalPages int `json:"total_pages"`
}

// decodeList accepts a bare array or a {results, total_pages} envelope.
func decodeList[T any](data json.RawMessage) (List[T], error) {
	trimmed := bytes.TrimSpace(data)
	out := List[T]{Items: []T{}, TotalPages: 1}
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return out, nil
	}
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &out.Items); err != nil {
			return List[T]{}, err
		}
	} else {
		var env envelope[T]
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return List[T]{}, err
		}
		if env.Results != nil {
			out.Items = env.Results
		}
		if env.TotalPages > 1 {
			out.TotalPages = env.TotalPages
		}
	}
	if out.Items == nil {
		out.Items = []T{}
	}
	return out, nil
}

func getList[T any](ctx context.Context, c *Client, r call) (List[T], error) {
	var raw json.RawMessage
	if err := c.do(ctx, r, &raw); err != nil {
		return List[T]{}, err
	}
	return decodeList[T](raw)
}
