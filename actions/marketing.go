package actions

import (
	"github.com/gin-gonic/gin"
	"gitlab.com/ainativeclub/portal_api/routing"
)

// Home godoc
// Serves the root path on both domains. On the app subdomain the gate
// has already rewritten the request to the portal, on the primary
// domain this is the public marketing landing.
func (actions *Actions) Home(c *gin.Context) {
	if routing.IsAppDomain(c.Request.Host) {
		actions.PortalHome(c)
		return
	}
	actions.MarketingHome(c)
}

// MarketingHome godoc
// swagger:route GET / marketing marketing_home
// Marketing home
//
//	Produces:
//	- application/json
//
//	Responses:
//	  200: StringResp
func (actions *Actions) MarketingHome(c *gin.Context) {
	c.JSON(OK, map[string]string{
		"name":    "AI Native Club",
		"tagline": "A private community for founders building AI native companies",
		"apply":   "/applications",
		"portal":  actions.urls.App(c.Request.Host, requestProto(c), "/"),
	})
}

// Login godoc
// The login page lives on the app subdomain. The gate bounces active
// members straight to the portal before this handler runs.
func (actions *Actions) Login(c *gin.Context) {
	payload := map[string]string{
		"magiclink": "/auth/magiclink",
		"oauth":     "/auth/oauth/github",
	}
	if errCode := c.Query("error"); errCode != "" {
		payload["error"] = errCode
	}
	c.JSON(OK, payload)
}
