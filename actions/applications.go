package actions

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gitlab.com/ainativeclub/portal_api/featureflags"
	"gitlab.com/ainativeclub/portal_api/httputils"
	"gitlab.com/ainativeclub/portal_api/model"
	"gitlab.com/ainativeclub/portal_api/monitor"
)

// SubmitApplication godoc
// swagger:route POST /applications applications submit_application
// Submit application
//
// Validate and save a membership application
//
//	Consumes:
//	- application/x-www-form-urlencoded
//
//	Produces:
//	- application/json
//
//	Responses:
//	  201: SubmitResp
//	  422: SubmitResp
//	  500: SubmitResp
func (actions *Actions) SubmitApplication(c *gin.Context) {
	if !featureflags.IsEnabled("portal.allow_applications") {
		abortWithError(c, AccessDenied, "Applications are closed at the moment")
		return
	}

	var request model.ApplicationRequest
	if err := c.ShouldBind(&request); err != nil {
		monitor.ApplicationsSubmitted.WithLabelValues("invalid").Inc()
		c.JSON(BadRequest, httputils.SubmitResp{Error: "Invalid request"})
		return
	}

	if message := request.Validate(); message != "" {
		monitor.ApplicationsSubmitted.WithLabelValues("invalid").Inc()
		c.JSON(ValidationFailed, httputils.SubmitResp{Error: message})
		return
	}

	if _, err := actions.service.SubmitApplication(&request); err != nil {
		monitor.ApplicationsSubmitted.WithLabelValues("store_error").Inc()
		c.JSON(ServerError, httputils.SubmitResp{Error: "Failed to save application"})
		return
	}

	monitor.ApplicationsSubmitted.WithLabelValues("saved").Inc()
	c.JSON(Created, httputils.SubmitResp{Success: true})
}

// GetApplicationStatus godoc
// swagger:route GET /applications/status applications application_status
// Application status
//
// Look up the most recent application for an email address
//
//	Produces:
//	- application/json
//
//	Responses:
//	  200: StatusResp
//	  404: RequestErrorResp
//	  422: RequestErrorResp
func (actions *Actions) GetApplicationStatus(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if !model.IsValidEmail(email) {
		abortWithError(c, ValidationFailed, "A valid email address is required")
		return
	}

	application, err := actions.service.GetApplicationStatus(email)
	if err != nil {
		abortWithError(c, ServerError, "Unable to load application status")
		return
	}
	if application == nil {
		abortWithError(c, NotFound, "No application found for this email")
		return
	}

	c.JSON(OK, httputils.StatusResp{
		Status:    string(application.Status),
		CreatedAt: application.CreatedAt.Format(time.RFC3339),
	})
}
