package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

// Client talks to the identity provider's REST API. The provider owns
// password, OAuth and magic-link flows end to end, this client only
// consumes them: exchange a code for a session, validate cookie tokens,
// trigger a magic-link email, revoke a session.
type Client struct {
	baseURL   string
	apiKey    string
	jwtSecret string
	http      *http.Client
}

// TokenResponse is the session the provider issues on a code exchange
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// NewClient constructor
func NewClient(baseURL, apiKey, jwtSecret string) *Client {
	return &Client{
		baseURL:   baseURL,
		apiKey:    apiKey,
		jwtSecret: jwtSecret,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ExchangeCode trades an authorization code for a session
func (c *Client) ExchangeCode(ctx context.Context, code string) (*TokenResponse, error) {
	payload, _ := json.Marshal(map[string]string{
		"auth_code": code,
	})

	endpoint := c.baseURL + "/auth/v1/token?grant_type=authorization_code"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "identity: build token request")
	}
	c.decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "identity: exchange code")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity: exchange code: unexpected status %d", resp.StatusCode)
	}

	token := TokenResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, errors.Wrap(err, "identity: decode token response")
	}
	if token.AccessToken == "" {
		return nil, errors.New("identity: empty access token in response")
	}
	return &token, nil
}

// SignOut revokes the given session token with the provider
func (c *Client) SignOut(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/v1/logout", nil)
	if err != nil {
		return errors.Wrap(err, "identity: build logout request")
	}
	c.decorate(req)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "identity: sign out")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("identity: sign out: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// SendMagicLink asks the provider to email a passwordless login link
func (c *Client) SendMagicLink(ctx context.Context, email, redirectTo string) error {
	payload, _ := json.Marshal(map[string]string{
		"email":       email,
		"redirect_to": redirectTo,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/v1/magiclink", bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "identity: build magiclink request")
	}
	c.decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "identity: send magic link")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("identity: send magic link: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// OAuthURL builds the provider's authorize URL for an OAuth sign-in
func (c *Client) OAuthURL(provider, redirectTo string) string {
	query := url.Values{}
	query.Set("provider", provider)
	if redirectTo != "" {
		query.Set("redirect_to", redirectTo)
	}
	return c.baseURL + "/auth/v1/authorize?" + query.Encode()
}

func (c *Client) decorate(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
}
