package actions

import (
	"context"

	"gitlab.com/ainativeclub/portal_api/config"
	"gitlab.com/ainativeclub/portal_api/lib/identity"
	"gitlab.com/ainativeclub/portal_api/routing"
	"gitlab.com/ainativeclub/portal_api/service"
)

// Actions structure
type Actions struct {
	ctx      context.Context
	cfg      config.Config
	service  *service.Service
	identity *identity.Client
	urls     routing.URLs
}

// NewActions constructor
func NewActions(cfg config.Config, srv *service.Service, idp *identity.Client, ctx context.Context) *Actions {
	return &Actions{
		ctx:      ctx,
		cfg:      cfg,
		service:  srv,
		identity: idp,
		urls: routing.URLs{
			Domain:    cfg.Server.API.Domain,
			LocalHost: cfg.Server.API.LocalHost,
		},
	}
}
