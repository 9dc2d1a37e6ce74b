package service

import (
	"fmt"
	"html"
	"strings"

	"gitlab.com/ainativeclub/portal_api/model"
)

func applicationNotificationSubject(app *model.Application) string {
	return fmt.Sprintf("New Application: %s %s", app.FirstName, app.LastName)
}

// applicationNotificationBody build the operator notification with every field
// the applicant submitted
func applicationNotificationBody(app *model.Application) string {
	var b strings.Builder
	b.WriteString("<h2>New Application Received</h2>")
	writeField(&b, "Name", app.FirstName+" "+app.LastName)
	writeField(&b, "Email", app.Email)
	writeField(&b, "Role", string(app.Role))
	writeField(&b, "ARR", string(app.ARR))
	writeField(&b, "Building", app.Building)
	writeField(&b, "Website", app.Website)
	writeField(&b, "Challenge", app.PainPoints)
	if app.Github != nil {
		writeField(&b, "GitHub", *app.Github)
	}
	if app.Linkedin != nil {
		writeField(&b, "LinkedIn", *app.Linkedin)
	}

	return b.String()
}

func applicationConfirmationSubject() string {
	return "We received your application"
}

func applicationConfirmationBody(app *model.Application) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<h2>Thanks, %s!</h2>", html.EscapeString(app.FirstName)))
	b.WriteString("<p>Your application to AI Native Club has been received and is being reviewed.</p>")
	b.WriteString("<p>We keep the group small on purpose, so reviews are done by hand. You will hear back from us either way.</p>")
	b.WriteString("<p>&mdash; AI Native Club</p>")

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString("<p><strong>")
	b.WriteString(label)
	b.WriteString(":</strong> ")
	b.WriteString(html.EscapeString(value))
	b.WriteString("</p>")
}
