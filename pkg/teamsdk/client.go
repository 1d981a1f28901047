package teamsdk

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

// SDKClient talks to the public endpoints and creates per-user Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// AsUser returns a Session acting as userID.
func (c *SDKClient) AsUser(userID string) *Session {
	return &Session{client: c, userID: userID}
}

func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	return call[User](ctx, c, http.MethodPost, "/v1/users", req, "", http.StatusCreated)
}

// Login verifies credentials and returns the matching user.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*User, error) {
	return call[User](ctx, c, http.MethodPost, "/v1/login", LoginRequest{Email: email, Password: password}, "", http.StatusOK)
}

// LoginSession logs in and returns a Session for the authenticated user.
func (c *SDKClient) LoginSession(ctx context.Context, email, password string) (*Session, error) {
	u, err := c.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return c.AsUser(u.ID), nil
}

func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return call[HealthResponse](ctx, c, http.MethodGet, "/livez", nil, "", http.StatusOK)
}

func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return call[HealthResponse](ctx, c, http.MethodGet, "/readyz", nil, "", http.StatusOK)
}

// Health calls the plain text /health endpoint and returns its body.
func (c *SDKClient) Health(ctx context.Context) (string, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/health", nil, "")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", parseErrorResponse(resp, body)
	}
	return string(body), nil
}
