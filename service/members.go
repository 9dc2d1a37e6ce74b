package service

import (
	"github.com/rs/zerolog/log"
	"gitlab.com/ainativeclub/portal_api/model"
)

// GetMemberByUserID load the member record bound to an identity provider
// user id. Returns nil when the user never became a member.
func (service *Service) GetMemberByUserID(userID string) (*model.Member, error) {
	member, err := service.repo.GetMemberByUserID(userID)
	if err != nil {
		log.Error().Err(err).
			Str("section", "members").
			Str("method", "GetMemberByUserID").
			Msg("Unable to load member")
		return nil, err
	}

	return member, nil
}
