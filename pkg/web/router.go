// Copyright 2026 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/classroom-service/internal/logging"
	"github.com/canonical/classroom-service/internal/monitoring"
	"github.com/canonical/classroom-service/internal/tracing"
	"github.com/canonical/classroom-service/pkg/authentication"
	"github.com/canonical/classroom-service/pkg/classes"
	"github.com/canonical/classroom-service/pkg/invites"
	"github.com/canonical/classroom-service/pkg/metrics"
	"github.com/canonical/classroom-service/pkg/organizations"
	"github.com/canonical/classroom-service/pkg/status"
	"github.com/canonical/classroom-service/pkg/usercontext"
)

type RouterConfig struct {
	CORSAllowedOrigins []string

	OrgService     organizations.ServiceInterface
	ClassService   classes.ServiceInterface
	ContextService usercontext.ServiceInterface
	InviteService  invites.ServiceInterface

	AuthMiddleware *authentication.Middleware
}

func NewRouter(
	cfg RouterConfig,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		if cfg.AuthMiddleware != nil {
			r.Use(cfg.AuthMiddleware.Authenticate())
		}

		organizations.NewAPI(cfg.OrgService, logger).RegisterEndpoints(r)
		classes.NewAPI(cfg.ClassService, logger).RegisterEndpoints(r)
		usercontext.NewAPI(cfg.ContextService, logger).RegisterEndpoints(r)
		invites.NewAPI(cfg.InviteService, logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
