package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

const testSecret = "portal-test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("unable to sign test token: %s", err)
	}
	return signed
}

func requestWithToken(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/portal", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: CookieAccessToken, Value: token})
	}
	return req
}

func TestSessionFromCookies(t *testing.T) {
	client := NewClient("https://identity.example.com", "anon-key", testSecret)

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "user-123",
		"email": "founder@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	session := client.SessionFromCookies(requestWithToken(token))
	assert.NotNil(t, session)
	assert.Equal(t, "user-123", session.UserID)
	assert.Equal(t, "founder@example.com", session.Email)
	assert.Equal(t, token, session.Token)
}

func TestSessionFromCookiesAnonymous(t *testing.T) {
	client := NewClient("https://identity.example.com", "anon-key", testSecret)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "No session cookie",
			token: "",
		},
		{
			name:  "Garbage token",
			token: "not-a-jwt",
		},
		{
			name: "Expired token",
			token: signToken(t, testSecret, jwt.MapClaims{
				"sub": "user-123",
				"exp": time.Now().Add(-time.Hour).Unix(),
			}),
		},
		{
			name: "Token signed with another secret",
			token: signToken(t, "other-secret", jwt.MapClaims{
				"sub": "user-123",
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
		},
		{
			name: "Token without a subject",
			token: signToken(t, testSecret, jwt.MapClaims{
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := client.SessionFromCookies(requestWithToken(tt.token))
			assert.Nil(t, session)
		})
	}
}
