package service

import (
	"github.com/rs/zerolog/log"
	"gitlab.com/ainativeclub/portal_api/model"
	"gitlab.com/ainativeclub/portal_api/queries"
)

// JoinWaitlist add an email to the waitlist. A duplicate signup is not an
// error, the caller is told they are already on the list.
func (service *Service) JoinWaitlist(email string) (alreadyJoined bool, err error) {
	entry := model.WaitlistEntry{Email: email}
	if err := service.repo.InsertWaitlistEntry(&entry); err != nil {
		if queries.IsUniqueViolation(err) {
			return true, nil
		}
		log.Error().Err(err).
			Str("section", "waitlist").
			Str("method", "JoinWaitlist").
			Msg("Unable to save waitlist entry")
		return false, err
	}

	return false, nil
}
