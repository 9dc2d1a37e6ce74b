package featureflags

import (
	"net/http"

	"github.com/Unleash/unleash-client-go/v3"
	"github.com/rs/zerolog/log"
)

// Config for the unleash feature flag server
type Config struct {
	AppName string `mapstructure:"app_name"`
	URL     string `mapstructure:"url"`
	Token   string `mapstructure:"token"`
}

var active bool

type errorListener struct{}

func (l errorListener) OnError(err error) {
	log.Error().Err(err).Str("lib", "unleash").Msg("Feature flag client error")
}

func (l errorListener) OnWarning(err error) {
	log.Warn().Err(err).Str("lib", "unleash").Msg("Feature flag client warning")
}

// Initialize the unleash client. Leaving the URL unset keeps every
// flag open, so a deployment without a flag server still accepts
// applications.
func Initialize(cfg Config) error {
	if cfg.URL == "" {
		log.Info().Str("lib", "unleash").Msg("Feature flags not configured, all flags default to enabled")
		return nil
	}
	err := unleash.Initialize(
		unleash.WithListener(errorListener{}),
		unleash.WithAppName(cfg.AppName),
		unleash.WithUrl(cfg.URL),
		unleash.WithCustomHeaders(http.Header{"Authorization": {cfg.Token}}),
	)
	if err != nil {
		return err
	}
	active = true
	return nil
}

// IsEnabled checks a feature flag, defaulting to enabled when no flag
// server is configured
func IsEnabled(feature string, options ...unleash.FeatureOption) bool {
	if !active {
		return true
	}
	return unleash.IsEnabled(feature, options...)
}

// Close the unleash client
func Close() {
	if active {
		_ = unleash.Close()
	}
}
