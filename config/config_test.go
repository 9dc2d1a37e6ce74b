package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	cfg := Config{}
	cfg.Server.API.Port = 4015
	cfg.Server.API.Domain = "ainativeclub.com"
	cfg.Server.Sendgrid.Key = "SG.test"
	cfg.Server.Sendgrid.From = "notifications@ainativeclub.com"
	cfg.Server.Sendgrid.NotificationEmail = "ops@ainativeclub.com"
	cfg.Identity.URL = "https://identity.ainativeclub.com"
	cfg.Identity.APIKey = "anon"
	cfg.Identity.JWTSecret = "secret"
	for _, db := range []*DatabaseConfig{&cfg.DatabaseCluster.Writer, &cfg.DatabaseCluster.ReaderAdmin} {
		db.Host = "127.0.0.1"
		db.Port = 5432
		db.Name = "portal"
		db.Username = "portal"
	}
	return cfg
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidateAggregatesEveryProblem(t *testing.T) {
	cfg := validConfig()
	cfg.Identity.JWTSecret = ""
	cfg.Server.Sendgrid.Key = ""
	cfg.Server.Sendgrid.NotificationEmail = "not-an-email"

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "identity.jwt_secret is required")
	assert.Contains(t, err.Error(), "server.sendgrid.key is required")
	assert.Contains(t, err.Error(), "server.sendgrid.notification_email is not a valid email address")
}

func TestValidateRequiresBothDatabaseCredentials(t *testing.T) {
	cfg := validConfig()
	cfg.DatabaseCluster.ReaderAdmin.Host = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database_cluster.reader_admin.host is required")
}

func TestValidateRequiresDatabasePort(t *testing.T) {
	cfg := validConfig()
	cfg.DatabaseCluster.Writer.Port = 0

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database_cluster.writer.port is required")
}
