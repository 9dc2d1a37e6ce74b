package service

import (
	"time"

	"github.com/rs/zerolog/log"
	"gitlab.com/ainativeclub/portal_api/model"
	"gitlab.com/ainativeclub/portal_api/monitor"
	"golang.org/x/sync/errgroup"
)

// emailWait bounds how long a submission waits on the email provider
// before returning. Sends still in flight are left to finish on their own.
const emailWait = 10 * time.Second

// SubmitApplication persist a new application and notify the operator and
// the applicant. Both emails are best effort: the application is already
// saved when they go out, so a provider failure is logged and swallowed.
func (service *Service) SubmitApplication(request *model.ApplicationRequest) (*model.Application, error) {
	logger := log.With().
		Str("section", "applications").
		Str("method", "SubmitApplication").
		Logger()

	application := request.ToApplication()
	if err := service.repo.InsertApplication(application); err != nil {
		logger.Error().Err(err).Msg("Unable to save application")
		return nil, err
	}

	service.sendApplicationEmails(application)

	return application, nil
}

func (service *Service) sendApplicationEmails(application *model.Application) {
	logger := log.With().
		Str("section", "applications").
		Str("method", "sendApplicationEmails").
		Str("email", application.Email).
		Logger()

	var eg errgroup.Group
	eg.Go(func() error {
		err := service.sendgrid.SendEmail(
			service.cfg.Server.Sendgrid.NotificationEmail,
			applicationNotificationSubject(application),
			applicationNotificationBody(application),
		)
		if err != nil {
			monitor.EmailFailures.WithLabelValues("operator_notification").Inc()
			logger.Error().Err(err).Msg("Unable to send operator notification email")
		}
		return nil
	})
	eg.Go(func() error {
		err := service.sendgrid.SendEmail(
			application.Email,
			applicationConfirmationSubject(),
			applicationConfirmationBody(application),
		)
		if err != nil {
			monitor.EmailFailures.WithLabelValues("applicant_confirmation").Inc()
			logger.Error().Err(err).Msg("Unable to send applicant confirmation email")
		}
		return nil
	})

	done := make(chan struct{})
	go func() {
		_ = eg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(emailWait):
		logger.Warn().Msg("Email provider is slow, returning before sends completed")
	}
}

// GetApplicationStatus look up the most recent application for an email
func (service *Service) GetApplicationStatus(email string) (*model.Application, error) {
	application, err := service.repo.GetLatestApplicationByEmail(email)
	if err != nil {
		log.Error().Err(err).
			Str("section", "applications").
			Str("method", "GetApplicationStatus").
			Msg("Unable to load application")
		return nil, err
	}

	return application, nil
}
