package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/heelin/finfolio/internal/domain"
)

// Service is the typed request surface the screens depend on. The
// concrete Client implements it; tests substitute a mock.
type Service interface {
	Login(ctx context.Context, name string) (TokenResponse, error)
	Register(ctx context.Context, name string) (int, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	CreateAccount(ctx context.Context, name string, typ domain.AccountType) (int, error)
	DeleteAccount(ctx context.Context, id int) error
	UpdateHistory(ctx context.Context, accountID int, h domain.MonthlyHistory) (domain.MonthlyHistory, error)
}

// UserInfo is the user object nested in the login response data.
type UserInfo struct {
	ID int `json:"id"`
}

// TokenResponse is the data payload of a successful login.
type TokenResponse struct {
	User  UserInfo `json:"user"`
	Token string   `json:"token"`
}

// Client speaks JSON over HTTP to the backend, attaching the session's
// bearer token when one is held. A request resolves exactly once: no
// retries, no timeout beyond the transport's.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
	log     *zap.Logger
}

var _ Service = (*Client)(nil)

// NewClient builds a client for the given base URL. A zero timeout
// leaves the transport default in place. Logger may be zap.NewNop().
func NewClient(baseURL string, timeout time.Duration, session *Session, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		session: session,
		log:     log,
	}
}

// Session returns the session this client authenticates with.
func (c *Client) Session() *Session { return c.session }

func (c *Client) Login(ctx context.Context, name string) (TokenResponse, error) {
	return send[TokenResponse](ctx, c, loginEndpoint(name))
}

func (c *Client) Register(ctx context.Context, name string) (int, error) {
	return send[int](ctx, c, registerEndpoint(name))
}

func (c *Client) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return send[[]domain.Account](ctx, c, listAccountsEndpoint())
}

func (c *Client) CreateAccount(ctx context.Context, name string, typ domain.AccountType) (int, error) {
	return send[int](ctx, c, createAccountEndpoint(name, typ))
}

// DeleteAccount expects an empty 204/205 response; that is its success
// path, not a decoding failure.
func (c *Client) DeleteAccount(ctx context.Context, id int) error {
	_, err := send[struct{}](ctx, c, deleteAccountEndpoint(id))
	return err
}

func (c *Client) UpdateHistory(ctx context.Context, accountID int, h domain.MonthlyHistory) (domain.MonthlyHistory, error) {
	return send[domain.MonthlyHistory](ctx, c, updateHistoryEndpoint(accountID, h))
}

// send executes one endpoint and classifies the outcome into the
// closed error taxonomy. Every failure leaves the client as one of
// ErrInvalidURL, *StatusError, *DecodeError, *Failure, ErrNoContent
// (wrapped) or *RequestError.
func send[T any](ctx context.Context, c *Client, ep Endpoint) (T, error) {
	var zero T

	target, err := url.JoinPath(c.baseURL, ep.Path)
	if err != nil {
		return zero, fmt.Errorf("%w: %s", ErrInvalidURL, ep.Path)
	}

	var body io.Reader
	if ep.Body != nil {
		data, err := json.Marshal(ep.Body)
		if err != nil {
			return zero, &RequestError{Err: err}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, target, body)
	if err != nil {
		return zero, fmt.Errorf("%w: %s", ErrInvalidURL, target)
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.session.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	c.log.Debug("api request",
		zap.String("method", ep.Method),
		zap.String("url", target))

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("api transport error", zap.String("url", target), zap.Error(err))
		return zero, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, &RequestError{Err: err}
	}

	c.log.Debug("api response",
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.String("body", clip(string(raw), 1000)))

	switch {
	case resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusResetContent:
		if ep.ExpectEmpty {
			return zero, nil
		}
		// contract violation: the caller expected a body
		return zero, fmt.Errorf("%w with status %d", ErrNoContent, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return zero, &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	return decodeEnvelope[T](raw)
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
