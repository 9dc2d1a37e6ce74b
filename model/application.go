package model

import (
	"net/mail"
	"net/url"
	"strings"
	"time"
)

// ApplicationStatus defined the list of possible application statuses
type ApplicationStatus string

const (
	// ApplicationStatusPending when the application was submitted and not yet looked at
	ApplicationStatusPending ApplicationStatus = "pending"
	// ApplicationStatusReviewing when an operator picked up the application
	ApplicationStatusReviewing ApplicationStatus = "reviewing"
	// ApplicationStatusAccepted when the applicant was approved as a member
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	// ApplicationStatusRejected when the applicant was turned down
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) String() string {
	return string(s)
}

// ApplicantRole defined the list of roles an applicant can pick on the form
type ApplicantRole string

const (
	ApplicantRoleFounder   ApplicantRole = "founder"
	ApplicantRoleEngineer  ApplicantRole = "engineer"
	ApplicantRoleOperator  ApplicantRole = "operator"
	ApplicantRoleInvestor  ApplicantRole = "investor"
	ApplicantRoleOtherRole ApplicantRole = "other"
)

func (r ApplicantRole) IsValid() bool {
	switch r {
	case ApplicantRoleFounder,
		ApplicantRoleEngineer,
		ApplicantRoleOperator,
		ApplicantRoleInvestor,
		ApplicantRoleOtherRole:
		return true
	}
	return false
}

func (r ApplicantRole) String() string {
	return string(r)
}

// ARRBracket defined the annual recurring revenue brackets on the form
type ARRBracket string

const (
	ARRBracketPreRevenue ARRBracket = "pre-revenue"
	ARRBracketUnder100K  ARRBracket = "0-100k"
	ARRBracket100KTo1M   ARRBracket = "100k-1m"
	ARRBracketOver1M     ARRBracket = "1m+"
)

func (b ARRBracket) IsValid() bool {
	switch b {
	case ARRBracketPreRevenue,
		ARRBracketUnder100K,
		ARRBracket100KTo1M,
		ARRBracketOver1M:
		return true
	}
	return false
}

func (b ARRBracket) String() string {
	return string(b)
}

// Application structure
// One row per submission. Resubmitting appends a new row, the status
// lookup always takes the most recent one by creation time.
type Application struct {
	ID         uint64            `gorm:"primary_key" json:"id"`
	Email      string            `gorm:"column:email" json:"email"`
	FirstName  string            `gorm:"column:first_name" json:"first_name"`
	LastName   string            `gorm:"column:last_name" json:"last_name"`
	Building   string            `gorm:"column:building" json:"building"`
	Website    string            `gorm:"column:website" json:"website"`
	Github     *string           `gorm:"column:github" json:"github,omitempty"`
	Linkedin   *string           `gorm:"column:linkedin" json:"linkedin,omitempty"`
	Role       ApplicantRole     `gorm:"column:role" json:"role"`
	ARR        ARRBracket        `gorm:"column:arr" json:"arr"`
	PainPoints string            `gorm:"column:pain_points" json:"pain_points"`
	Status     ApplicationStatus `sql:"not null;type:application_status_t" json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
}

func (application *Application) TableName() string {
	return "applications"
}

// ApplicationRequest is the payload bound from the application form
type ApplicationRequest struct {
	Email      string `form:"email" json:"email"`
	FirstName  string `form:"first_name" json:"first_name"`
	LastName   string `form:"last_name" json:"last_name"`
	Building   string `form:"building" json:"building"`
	Website    string `form:"website" json:"website"`
	Github     string `form:"github" json:"github"`
	Linkedin   string `form:"linkedin" json:"linkedin"`
	Role       string `form:"role" json:"role"`
	ARR        string `form:"arr" json:"arr"`
	PainPoints string `form:"pain_points" json:"pain_points"`
}

// Validate checks every field of the request and returns the first
// violated field's message. No side effects happen before this passes.
func (request *ApplicationRequest) Validate() string {
	request.Email = strings.TrimSpace(strings.ToLower(request.Email))
	if !IsValidEmail(request.Email) {
		return "A valid email address is required"
	}
	if strings.TrimSpace(request.FirstName) == "" {
		return "First name is required"
	}
	if strings.TrimSpace(request.LastName) == "" {
		return "Last name is required"
	}
	if strings.TrimSpace(request.Building) == "" {
		return "Tell us what you are building"
	}
	if !IsValidURL(request.Website) {
		return "A valid website URL is required"
	}
	if request.Github != "" && !IsValidURL(request.Github) {
		return "GitHub URL is not valid"
	}
	if request.Linkedin != "" && !IsValidURL(request.Linkedin) {
		return "LinkedIn URL is not valid"
	}
	if !ApplicantRole(request.Role).IsValid() {
		return "Invalid role"
	}
	if !ARRBracket(request.ARR).IsValid() {
		return "Invalid ARR bracket"
	}
	if strings.TrimSpace(request.PainPoints) == "" {
		return "Tell us about your biggest challenge"
	}
	return ""
}

// ToApplication maps a validated request to a new pending record.
// Optional fields end up as NULL instead of empty strings.
func (request *ApplicationRequest) ToApplication() *Application {
	application := &Application{
		Email:      request.Email,
		FirstName:  strings.TrimSpace(request.FirstName),
		LastName:   strings.TrimSpace(request.LastName),
		Building:   strings.TrimSpace(request.Building),
		Website:    request.Website,
		Role:       ApplicantRole(request.Role),
		ARR:        ARRBracket(request.ARR),
		PainPoints: strings.TrimSpace(request.PainPoints),
		Status:     ApplicationStatusPending,
	}
	if request.Github != "" {
		github := request.Github
		application.Github = &github
	}
	if request.Linkedin != "" {
		linkedin := request.Linkedin
		application.Linkedin = &linkedin
	}
	return application
}

// IsValidEmail reports whether the address parses as a single RFC 5322 address
func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}
	address, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return address.Address == email && strings.Contains(email, ".")
}

// IsValidURL accepts absolute http(s) URLs only
func IsValidURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
