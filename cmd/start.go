package cmd

import (
	"github.com/rs/zerolog/log"

	"gitlab.com/ainativeclub/portal_api/cmd/commands"
	"gitlab.com/ainativeclub/portal_api/config"
	"gitlab.com/ainativeclub/portal_api/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(startCmd)
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the portal server and listen for incoming requests",
	Long:  `Run database migrations, then serve the marketing site, the intake endpoints and the gated member portal`,
	Run: func(cmd *cobra.Command, args []string) {
		// load server configuration from server
		log.Debug().Msg("Loading server configuration")
		if viper.ConfigFileUsed() != "" {
			log.Debug().Str("section", "init").Str("path", viper.ConfigFileUsed()).Msg("Configuration file loaded")
		}
		cfg := config.LoadConfig(viper.GetViper())
		// Running migrations
		log.Debug().Msg("Running migrations")
		commands.Migrate(cfg)

		// start a new server
		log.Debug().Str("section", "init").Msg("Starting new server instance")
		srv := server.NewServer(cfg)
		// listen for incoming requests
		log.Info().Str("section", "init").Msg("Listening for incoming requests")
		srv.Listen()
	},
}
