package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gitlab.com/ainativeclub/portal_api/featureflags"
	"gitlab.com/ainativeclub/portal_api/model"
)

// Config structure
type Config struct {
	Server          ServerConfig
	Identity        IdentityConfig        `mapstructure:"identity"`
	DatabaseCluster DatabaseClusterConfig `mapstructure:"database_cluster"`
	Unleash         featureflags.Config   `mapstructure:"unleash"`
}

// ServerConfig structure
type ServerConfig struct {
	API      APIConfig      `mapstructure:"api"`
	Sendgrid SendgridConfig `mapstructure:"sendgrid"`
	Debug    DebugConfig    `mapstructure:"debug"`
}

// APIConfig structure
type APIConfig struct {
	Port      int
	KeepAlive bool `mapstructure:"keep_alive"`
	// Domain is the production primary domain, e.g. ainativeclub.com
	Domain string
	// LocalHost is the host:port local development runs under
	LocalHost string `mapstructure:"local_host"`
}

// SendgridConfig structure
type SendgridConfig struct {
	Key      string
	FromName string `mapstructure:"from_name"`
	From     string
	// NotificationEmail receives the operator copy of each application
	NotificationEmail string `mapstructure:"notification_email"`
}

// IdentityConfig points at the external identity provider
type IdentityConfig struct {
	URL       string `mapstructure:"url"`
	APIKey    string `mapstructure:"api_key"`
	JWTSecret string `mapstructure:"jwt_secret"`
}

// DatabaseClusterConfig structure. The writer credential is the
// restricted one; ReaderAdmin is the privileged credential membership
// lookups need to bypass row-level policies.
type DatabaseClusterConfig struct {
	Writer      DatabaseConfig `mapstructure:"writer"`
	ReaderAdmin DatabaseConfig `mapstructure:"reader_admin"`
}

// DatabaseConfig structure
type DatabaseConfig struct {
	Type            string // postgres
	Host            string
	Username        string
	Password        string
	Name            string
	SSLmode         string `mapstructure:"sslmode"`
	ApplicationName string `mapstructure:"application_name"`
	Port            int
}

type DebugConfig struct {
	AllowedIPs string `mapstructure:"allowed_ips"`
}

// Validate checks every required field eagerly and reports all problems
// at once so a misconfigured deployment fails at startup, not on the
// first gated request.
func (config Config) Validate() error {
	var problems []string

	if config.Server.API.Port == 0 {
		problems = append(problems, "server.api.port is required")
	}
	if config.Server.API.Domain == "" {
		problems = append(problems, "server.api.domain is required")
	}
	if config.Identity.URL == "" {
		problems = append(problems, "identity.url is required")
	}
	if config.Identity.APIKey == "" {
		problems = append(problems, "identity.api_key is required")
	}
	if config.Identity.JWTSecret == "" {
		problems = append(problems, "identity.jwt_secret is required")
	}
	if config.Server.Sendgrid.Key == "" {
		problems = append(problems, "server.sendgrid.key is required")
	}
	if config.Server.Sendgrid.From == "" {
		problems = append(problems, "server.sendgrid.from is required")
	} else if !model.IsValidEmail(config.Server.Sendgrid.From) {
		problems = append(problems, "server.sendgrid.from is not a valid email address")
	}
	if config.Server.Sendgrid.NotificationEmail == "" {
		problems = append(problems, "server.sendgrid.notification_email is required")
	} else if !model.IsValidEmail(config.Server.Sendgrid.NotificationEmail) {
		problems = append(problems, "server.sendgrid.notification_email is not a valid email address")
	}
	for alias, db := range map[string]DatabaseConfig{
		"writer":       config.DatabaseCluster.Writer,
		"reader_admin": config.DatabaseCluster.ReaderAdmin,
	} {
		if db.Host == "" {
			problems = append(problems, fmt.Sprintf("database_cluster.%s.host is required", alias))
		}
		if db.Name == "" {
			problems = append(problems, fmt.Sprintf("database_cluster.%s.name is required", alias))
		}
		if db.Username == "" {
			problems = append(problems, fmt.Sprintf("database_cluster.%s.username is required", alias))
		}
		if db.Port == 0 {
			problems = append(problems, fmt.Sprintf("database_cluster.%s.port is required", alias))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// LoadConfig Load server configuration from the yaml file
func LoadConfig(viperConf *viper.Viper) Config {
	var config Config

	err := viperConf.Unmarshal(&config)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to decode config into struct")
	}
	if err := config.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	return config
}

// OpenConfig godoc
func OpenConfig(file string) {
	if file != "" {
		// Use config file from the flag.
		viper.SetConfigFile(file)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigName(".config")
	viper.AddConfigPath(".")                // First try to load the config from the current directory
	viper.AddConfigPath("$HOME")            // Then try to load it from the HOME directory
	viper.AddConfigPath("/etc/portal_api/") // As a last resort try to load it from /etc/
	viper.SetEnvPrefix("CFG")
	viper.AutomaticEnv()
	setDefaultVariables()

	err := viper.ReadInConfig() // Find and read the config file
	if err != nil {             // Handle errors reading the config file
		log.Fatal().Err(err).Msg("Unable to read configuration file")
	}
}

func setDefaultVariables() {
	viper.SetDefault("server.api.local_host", "localhost:4015")
	viper.SetDefault("server.sendgrid.from_name", "AI Native Club")
}
