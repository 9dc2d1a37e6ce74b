package identity

import (
	"net/http"

	"github.com/dgrijalva/jwt-go"
)

// Cookie names the identity provider's session travels under
const (
	CookieAccessToken  = "portal-access-token"
	CookieRefreshToken = "portal-refresh-token"
)

// Session is a validated identity carried by the request cookies.
// It is owned by the identity provider, this service only reads it.
type Session struct {
	UserID string
	Email  string
	Token  string
}

// SessionFromCookies resolves the caller's session from request cookies.
// A missing, expired or otherwise invalid token is a normal outcome and
// yields nil (anonymous), never an error.
func (c *Client) SessionFromCookies(r *http.Request) *Session {
	cookie, err := r.Cookie(CookieAccessToken)
	if err != nil || cookie.Value == "" {
		return nil
	}
	return c.sessionFromToken(cookie.Value)
}

func (c *Client) sessionFromToken(token string) *Session {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(c.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil
	}

	userID, _ := claims["sub"].(string)
	if userID == "" {
		return nil
	}
	email, _ := claims["email"].(string)

	return &Session{
		UserID: userID,
		Email:  email,
		Token:  token,
	}
}
