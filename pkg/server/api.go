package server

import (
	"fmt"

	"github.com/ahmedzukhrufrao/SendSafe/pkg/config"
	handlers "github.com/ahmedzukhrufrao/SendSafe/pkg/handlers/http"
	"github.com/ahmedzukhrufrao/SendSafe/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type (
	ApiServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	ApiServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewApiServer(di ApiServerDI) *ApiServer {
	return &ApiServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

func (s *ApiServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.WithField("addr", addr).Info("Starting API server")
	return s.router.Listen(addr)
}

func (s *ApiServer) setupRoutes() {
	s.router.Use(s.middlewareTransport.RecoverMiddleware.Middleware())
	s.router.Use(s.middlewareTransport.CORSMiddleware.Middleware())
	s.router.Use(s.middlewareTransport.MetricsMiddleware.Middleware())

	v1 := s.router.Group("/api/v1", s.middlewareTransport.AuthMiddleware.Middleware())
	{
		v1.Post("/analyze",
			s.middlewareTransport.RateLimitMiddleware.Middleware(),
			s.handlerTransport.AnalyzeHandler.Handle,
		)
		v1.Get("/ratelimit/status", s.handlerTransport.RateLimitStatusHandler.Handle)
	}

	admin := s.router.Group("/admin", s.middlewareTransport.AdminAuthMiddleware.Middleware())
	{
		ratelimits := admin.Group("/ratelimit")
		{
			ratelimits.Get("/stats", s.handlerTransport.RateLimitStatsHandler.Handle)
			ratelimits.Post("/sweep", s.handlerTransport.SweepRateLimitsHandler.Handle)
			ratelimits.Delete("/:client_id", s.handlerTransport.ClearRateLimitHandler.Handle)
			ratelimits.Delete("", s.handlerTransport.ClearAllRateLimitsHandler.Handle)
		}
	}
}
