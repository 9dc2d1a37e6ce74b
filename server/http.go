package server

import (
	"fmt"
	"net/http"
	"net/http/pprof"

	limit "github.com/bu/gin-access-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gitlab.com/ainativeclub/portal_api/actions"
	"gitlab.com/ainativeclub/portal_api/logger"
	"gitlab.com/ainativeclub/portal_api/monitor"
)

func (srv *server) ListenToRequests() {
	log.Info().Str("worker", "http_listen_to_requests").Str("action", "start").Msg("HTTP Listen to requests - started")
	defer log.Info().Str("worker", "http_listen_to_requests").Str("action", "stop").Msg("HTTP Listen to requests - stopped")

	a := srv.actions

	r := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	corsConfig.AllowOrigins = []string{
		"https://" + srv.config.Server.API.Domain,
		"https://www." + srv.config.Server.API.Domain,
		"https://app." + srv.config.Server.API.Domain,
		"http://" + srv.config.Server.API.LocalHost,
		"http://app." + srv.config.Server.API.LocalHost,
	}
	corsConfig.AllowHeaders = []string{"Origin", "X-Requested-With", "Content-Length", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "PUT", "POST", "DELETE", "PATCH", "OPTIONS"}

	r.Use(cors.New(corsConfig))
	r.Use(gin.Recovery()) // Recovery middleware recovers from any panics and writes a 500 if there was one.
	r.Use(logger.SetLogger(logger.Config{
		SkipPath: []string{"/probe/live", "/metrics"},
	}))

	// operational endpoints stay outside the gate, they answer on any host
	r.GET("/ping", actions.Ping)
	r.GET("/probe/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, map[string]string{"status": "live"})
	})
	r.GET("/metrics", monitor.Handler())

	debug := r.Group("/debug")
	{
		limit.TrustedHeaderField = "X-Forwarded-For"
		debug.Use(limit.CIDR(srv.config.Server.Debug.AllowedIPs))

		debug.GET("/pprof/:name", func(context *gin.Context) {
			pprof.Handler(context.Param("name")).ServeHTTP(context.Writer, context.Request)
		})
	}

	// everything below runs behind the gate on both domains
	site := r.Group("", a.PortalGate())
	{
		site.GET("/", a.Home)
		site.GET("/portal", a.PortalHome)
		site.GET("/login", a.Login)
		site.GET("/not-a-member", a.NotAMember)

		site.StaticFile("/manifest.json", "./web/manifest.json")
		site.StaticFile("/favicon.svg", "./web/favicon.svg")
		site.StaticFile("/favicon.ico", "./web/favicon.ico")
		site.StaticFile("/robots.txt", "./web/robots.txt")

		auth := site.Group("/auth")
		{
			auth.GET("/callback", a.AuthCallback)
			auth.POST("/signout", a.SignOut)
			auth.POST("/magiclink", a.SendMagicLink)
			auth.GET("/oauth/:provider", a.OAuthSignIn)
		}

		site.POST("/applications", a.SubmitApplication)
		site.GET("/applications/status", a.GetApplicationStatus)
		site.POST("/waitlist", a.JoinWaitlist)
	}

	srv.HTTP = &http.Server{
		Addr:    fmt.Sprintf(":%d", srv.config.Server.API.Port),
		Handler: r,
	}

	srv.HTTP.SetKeepAlivesEnabled(srv.config.Server.API.KeepAlive)

	port := srv.config.Server.API.Port
	httpServer := srv.HTTP
	if err := httpServer.ListenAndServe(); err != nil {
		if err != http.ErrServerClosed {
			log.Error().Err(err).Str("section", "server").Str("action", "ListenToRequests").Msgf("Unable to listen %d port", port)
		}
	}
}
