package service

import (
	"gitlab.com/ainativeclub/portal_api/config"
	"gitlab.com/ainativeclub/portal_api/lib/identity"
	"gitlab.com/ainativeclub/portal_api/lib/sendgrid"
	"gitlab.com/ainativeclub/portal_api/queries"
)

// Service structure
type Service struct {
	cfg      config.Config
	repo     *queries.Repo
	sendgrid sendgrid.Sendgrid
	identity *identity.Client
}

// NewService constructor
func NewService(cfg config.Config, repo *queries.Repo, sg sendgrid.Sendgrid, idp *identity.Client) *Service {
	return &Service{
		cfg:      cfg,
		repo:     repo,
		sendgrid: sg,
		identity: idp,
	}
}

// GetRepo get the repository attached to the service
func (service *Service) GetRepo() *queries.Repo {
	return service.repo
}

// GetIdentity get the identity provider client attached to the service
func (service *Service) GetIdentity() *identity.Client {
	return service.identity
}
