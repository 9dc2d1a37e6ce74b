package actions

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gitlab.com/ainativeclub/portal_api/lib/identity"
	"gitlab.com/ainativeclub/portal_api/model"
	"gitlab.com/ainativeclub/portal_api/routing"
)

// AuthCallback godoc
// swagger:route GET /auth/callback auth auth_callback
// Auth callback
//
// Exchange the identity provider's authorization code for a session
//
//	Responses:
//	  302: StringResp
func (actions *Actions) AuthCallback(c *gin.Context) {
	log := getlog(c)
	origin := requestProto(c) + "://" + c.Request.Host

	// on the app subdomain "/" already serves the portal
	defaultRedirect := "/portal"
	if routing.IsAppDomain(c.Request.Host) {
		defaultRedirect = "/"
	}
	redirect := c.Query("redirect")
	if !isSafeRedirect(redirect) {
		redirect = defaultRedirect
	}

	code := c.Query("code")
	if code != "" {
		token, err := actions.identity.ExchangeCode(c.Request.Context(), code)
		if err == nil {
			actions.setSessionCookies(c, token)
			c.Redirect(Found, origin+redirect)
			return
		}
		log.Error().Err(err).
			Str("section", "auth").
			Str("action", "callback").
			Msg("Code exchange failed")
	}

	c.Redirect(Found, origin+"/login?error=auth_failed")
}

// SignOut godoc
// swagger:route POST /auth/signout auth auth_signout
// Sign out
//
// Revoke the caller's session and clear the session cookies
//
//	Responses:
//	  302: StringResp
func (actions *Actions) SignOut(c *gin.Context) {
	log := getlog(c)

	if cookie, err := c.Request.Cookie(identity.CookieAccessToken); err == nil && cookie.Value != "" {
		if err := actions.identity.SignOut(c.Request.Context(), cookie.Value); err != nil {
			// the cookies are cleared either way, the token just expires on its own
			log.Warn().Err(err).
				Str("section", "auth").
				Str("action", "signout").
				Msg("Unable to revoke session with identity provider")
		}
	}

	actions.clearSessionCookies(c)
	c.Redirect(Found, actions.urls.Main(c.Request.Host, requestProto(c), "/"))
}

// SendMagicLink godoc
// swagger:route POST /auth/magiclink auth auth_magiclink
// Magic link
//
// Ask the identity provider to email a passwordless login link
//
//	Responses:
//	  200: SubmitResp
//	  422: RequestErrorResp
//	  500: RequestErrorResp
func (actions *Actions) SendMagicLink(c *gin.Context) {
	log := getlog(c)
	email := strings.TrimSpace(c.PostForm("email"))
	if !model.IsValidEmail(email) {
		abortWithError(c, ValidationFailed, "A valid email address is required")
		return
	}

	redirectTo := actions.urls.App(c.Request.Host, requestProto(c), "/auth/callback")
	if err := actions.identity.SendMagicLink(c.Request.Context(), email, redirectTo); err != nil {
		log.Error().Err(err).
			Str("section", "auth").
			Str("action", "magiclink").
			Msg("Unable to send magic link")
		abortWithError(c, ServerError, "Unable to send login link")
		return
	}

	c.JSON(OK, map[string]string{"message": "Check your inbox for a login link"})
}

// OAuthSignIn godoc
// swagger:route GET /auth/oauth/{provider} auth auth_oauth
// OAuth sign in
//
// Redirect the caller to the identity provider's OAuth entry point
//
//	Responses:
//	  302: StringResp
func (actions *Actions) OAuthSignIn(c *gin.Context) {
	provider := c.Param("provider")
	redirectTo := actions.urls.App(c.Request.Host, requestProto(c), "/auth/callback")
	c.Redirect(Found, actions.identity.OAuthURL(provider, redirectTo))
}

func (actions *Actions) setSessionCookies(c *gin.Context, token *identity.TokenResponse) {
	secure := requestProto(c) == "https"
	domain := actions.cookieDomain(c.Request.Host)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(identity.CookieAccessToken, token.AccessToken, token.ExpiresIn, "/", domain, secure, true)
	if token.RefreshToken != "" {
		c.SetCookie(identity.CookieRefreshToken, token.RefreshToken, 0, "/", domain, secure, true)
	}
}

func (actions *Actions) clearSessionCookies(c *gin.Context) {
	secure := requestProto(c) == "https"
	domain := actions.cookieDomain(c.Request.Host)
	c.SetCookie(identity.CookieAccessToken, "", -1, "/", domain, secure, true)
	c.SetCookie(identity.CookieRefreshToken, "", -1, "/", domain, secure, true)
}

// cookieDomain scopes the session cookies to the parent domain so both
// the marketing site and the app subdomain can see them
func (actions *Actions) cookieDomain(requestHost string) string {
	if strings.Contains(requestHost, "localhost") {
		return "localhost"
	}
	return "." + actions.cfg.Server.API.Domain
}

// isSafeRedirect only allows same-site relative paths
func isSafeRedirect(redirect string) bool {
	return strings.HasPrefix(redirect, "/") && !strings.HasPrefix(redirect, "//")
}
