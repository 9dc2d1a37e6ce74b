package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"gitlab.com/ainativeclub/portal_api/actions"
	"gitlab.com/ainativeclub/portal_api/config"
	"gitlab.com/ainativeclub/portal_api/featureflags"
	"gitlab.com/ainativeclub/portal_api/lib/identity"
	"gitlab.com/ainativeclub/portal_api/lib/sendgrid"
	"gitlab.com/ainativeclub/portal_api/queries"
	"gitlab.com/ainativeclub/portal_api/service"
)

// Server interface
type Server interface {
	Listen()
}

type server struct {
	config  config.Config
	actions *actions.Actions
	service *service.Service
	repo    *queries.Repo
	ctx     context.Context
	close   context.CancelFunc
	HTTP    *http.Server
}

// NewServer constructor
func NewServer(cfg config.Config) Server {
	ctx, close := context.WithCancel(context.Background())

	repo := queries.NewRepo(cfg.DatabaseCluster.Writer, cfg.DatabaseCluster.ReaderAdmin)
	sg := sendgrid.NewSendgrid(cfg.Server.Sendgrid.Key, cfg.Server.Sendgrid.FromName, cfg.Server.Sendgrid.From)
	idp := identity.NewClient(cfg.Identity.URL, cfg.Identity.APIKey, cfg.Identity.JWTSecret)

	portalService := service.NewService(cfg, repo, sg, idp)
	portalActions := actions.NewActions(cfg, portalService, idp, ctx)

	return &server{
		config:  cfg,
		service: portalService,
		actions: portalActions,
		repo:    repo,
		ctx:     ctx,
		close:   close,
	}
}

// Listen starts the http server and blocks until a termination signal
func (srv *server) Listen() {
	go srv.ListenToRequests()
	srv.stopOnSignal()
}

func (srv *server) stopOnSignal() {
	// listen for termination signals
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigc

	log.Info().Str("section", "server").Str("app_event", "terminate").Str("signal", sig.String()).Msg("Shutting down services")
	srv.closeApp(5 * time.Second)
}

func (srv *server) closeApp(timeout time.Duration) {
	// define a timeout in which the graceful shutdown procedure should happen before forcing the shutdown
	timeoutFunc := time.AfterFunc(timeout, func() {
		log.Printf("timeout %d ms has been elapsed, force exit", timeout.Milliseconds())
		os.Exit(0)
	})
	defer timeoutFunc.Stop()

	if err := srv.HTTP.Shutdown(context.Background()); err != nil {
		log.Error().Err(err).Str("section", "server").Str("action", "terminate").Msg("Unable to shutdown HTTP server")
	}

	srv.close()
	featureflags.Close()
	// make sure database connections are closed on program exit
	srv.repo.Close()

	log.Info().Str("section", "server").Str("app_event", "terminate").Str("state", "complete").Msg("All workers terminated")
}
