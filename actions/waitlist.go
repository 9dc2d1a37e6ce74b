package actions

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gitlab.com/ainativeclub/portal_api/httputils"
	"gitlab.com/ainativeclub/portal_api/model"
	"gitlab.com/ainativeclub/portal_api/monitor"
)

// JoinWaitlist godoc
// swagger:route POST /waitlist waitlist join_waitlist
// Join waitlist
//
// Add an email address to the waitlist. Signing up twice is a success.
//
//	Consumes:
//	- application/x-www-form-urlencoded
//
//	Produces:
//	- application/json
//
//	Responses:
//	  200: SubmitResp
//	  422: SubmitResp
//	  500: SubmitResp
func (actions *Actions) JoinWaitlist(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	if !model.IsValidEmail(email) {
		monitor.WaitlistJoins.WithLabelValues("invalid").Inc()
		c.JSON(ValidationFailed, httputils.SubmitResp{Error: "A valid email address is required"})
		return
	}

	alreadyJoined, err := actions.service.JoinWaitlist(email)
	if err != nil {
		monitor.WaitlistJoins.WithLabelValues("store_error").Inc()
		c.JSON(ServerError, httputils.SubmitResp{Error: "Failed to join waitlist"})
		return
	}

	if alreadyJoined {
		monitor.WaitlistJoins.WithLabelValues("duplicate").Inc()
		c.JSON(OK, httputils.SubmitResp{Success: true, Message: "Already on waitlist"})
		return
	}

	monitor.WaitlistJoins.WithLabelValues("joined").Inc()
	c.JSON(OK, httputils.SubmitResp{Success: true})
}
