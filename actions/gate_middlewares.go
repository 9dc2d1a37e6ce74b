package actions

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gitlab.com/ainativeclub/portal_api/lib/identity"
	"gitlab.com/ainativeclub/portal_api/model"
	"gitlab.com/ainativeclub/portal_api/monitor"
	"gitlab.com/ainativeclub/portal_api/routing"
)

// PortalGate classifies the request host, resolves the caller's session
// and membership and executes the routing decision. Every request passes
// through here before any route handler runs.
//
// A failed membership lookup is not treated as "not a member": the gate
// fails closed with a 503 so a flaky store can never leak a gated page.
func (actions *Actions) PortalGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := getlog(c)
		appDomain := routing.IsAppDomain(c.Request.Host)

		input := routing.Input{
			AppDomain: appDomain,
			Path:      c.Request.URL.Path,
		}

		if appDomain {
			session := actions.identity.SessionFromCookies(c.Request)
			if session != nil {
				input.HasSession = true
				c.Set("session", session)
			}

			// only decisions that depend on member state pay for the
			// lookup, so a store outage cannot block the public routes
			if session != nil && routing.RequiresMembership(c.Request.URL.Path) {
				member, err := actions.service.GetMemberByUserID(session.UserID)
				if err != nil {
					monitor.MembershipLookupFailures.Inc()
					log.Error().Err(err).
						Str("section", "gate").
						Str("user_id", session.UserID).
						Msg("Membership lookup failed, denying access")
					abortWithError(c, ServiceUnavailable, "Membership service unavailable")
					return
				}
				if member != nil {
					input.Member = &routing.MemberState{
						ID:     member.ID,
						Role:   string(member.Role),
						Active: member.IsActive(),
					}
				}
			}
		}

		decision := routing.Evaluate(input)
		monitor.RoutingDecisions.WithLabelValues(domainLabel(appDomain), string(decision.Kind)).Inc()

		switch decision.Kind {
		case routing.DecisionRedirect:
			c.Redirect(Found, actions.urls.App(c.Request.Host, requestProto(c), decision.Location))
			c.Abort()
		case routing.DecisionRewrite:
			c.Request.URL.Path = decision.Path
			actions.attachMember(c, decision.Member)
			c.Next()
		default:
			actions.attachMember(c, decision.Member)
			c.Next()
		}
	}
}

// attachMember exposes the gate's membership result to route handlers
// and, via request headers, to anything proxied behind them
func (actions *Actions) attachMember(c *gin.Context, member *routing.MemberState) {
	if member == nil {
		return
	}
	c.Set("member_id", member.ID)
	c.Set("member_role", member.Role)
	c.Request.Header.Set("x-member-id", strconv.FormatUint(member.ID, 10))
	c.Request.Header.Set("x-member-role", member.Role)
}

func domainLabel(appDomain bool) string {
	if appDomain {
		return "app"
	}
	return "main"
}

// GetActiveMember loads the full member row for handlers that need more
// than the id and role the gate attached
func (actions *Actions) GetActiveMember(c *gin.Context) (*model.Member, bool) {
	iSession, ok := c.Get("session")
	if !ok {
		return nil, false
	}
	session := iSession.(*identity.Session)
	member, err := actions.service.GetMemberByUserID(session.UserID)
	if err != nil || member == nil {
		return nil, false
	}
	return member, true
}
