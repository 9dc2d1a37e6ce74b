package actions

import (
	"github.com/gin-gonic/gin"
)

// PortalHome godoc
// swagger:route GET /portal portal portal_home
// Portal home
//
// The gated portal landing. Only reachable through the gate, which has
// already attached the caller's membership.
//
//	Produces:
//	- application/json
//
//	Responses:
//	  200: StringResp
//	  401: RequestErrorResp
func (actions *Actions) PortalHome(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		abortWithError(c, Unauthorized, "No active membership attached to this request")
		return
	}

	member, ok := actions.GetActiveMember(c)
	if !ok {
		abortWithError(c, Unauthorized, "No active membership attached to this request")
		return
	}

	c.JSON(OK, map[string]interface{}{
		"member_id": memberID,
		"email":     member.Email,
		"role":      member.Role,
		"status":    member.Status,
		"since":     member.CreatedAt,
	})
}

// NotAMember godoc
// Shown to a signed-in user whose account has no active membership
func (actions *Actions) NotAMember(c *gin.Context) {
	c.JSON(OK, map[string]string{
		"message": "Your account is not linked to an active membership. If you believe this is a mistake, reach out to the operators.",
	})
}
