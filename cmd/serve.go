// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/classroom-service/internal/config"
	"github.com/canonical/classroom-service/internal/db"
	"github.com/canonical/classroom-service/internal/docstore"
	"github.com/canonical/classroom-service/internal/logging"
	"github.com/canonical/classroom-service/internal/monitoring/prometheus"
	"github.com/canonical/classroom-service/internal/storage"
	"github.com/canonical/classroom-service/internal/tracing"
	"github.com/canonical/classroom-service/pkg/authentication"
	"github.com/canonical/classroom-service/pkg/classes"
	"github.com/canonical/classroom-service/pkg/invites"
	"github.com/canonical/classroom-service/pkg/organizations"
	"github.com/canonical/classroom-service/pkg/usercontext"
	"github.com/canonical/classroom-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("classroom-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()

	documents := docstore.NewClient(dbClient, tracer, monitor, logger)
	s := storage.NewStorage(documents, tracer, monitor, logger)

	tiebreak, err := usercontext.ParseTiebreak(specs.ContextOrgTiebreak)
	if err != nil {
		return fmt.Errorf("invalid context_org_tiebreak: %v", err)
	}

	classService := classes.NewService(s, tracer, monitor, logger)
	contextService := usercontext.NewService(s, classService, tiebreak, tracer, monitor, logger)
	orgService := organizations.NewService(s, contextService, tracer, monitor, logger)
	inviteService := invites.NewService(s, tracer, monitor, logger)

	if _, err := orgService.EnsureDefaultOrganization(context.Background(), specs.DefaultOrgName); err != nil {
		return fmt.Errorf("failed to ensure default organization: %v", err)
	}

	var authMiddleware *authentication.Middleware
	if specs.AuthenticationEnabled {
		verifier, err := authentication.NewJWTAuthenticator(
			context.Background(),
			specs.OIDCIssuer,
			specs.JWKSURL,
			specs.AllowedSubjects,
			specs.RequiredScope,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up JWT authentication: %v", err)
		}
		authMiddleware = authentication.NewMiddleware(verifier, tracer, monitor, logger)
		logger.Info("Authentication is enabled")
	} else {
		authMiddleware = authentication.NewMiddleware(authentication.NewNoopVerifier(), tracer, monitor, logger)
		logger.Info("Authentication is disabled, tokens are trusted as user IDs")
	}

	router := web.NewRouter(
		web.RouterConfig{
			CORSAllowedOrigins: specs.CORSAllowedOrigins,
			OrgService:         orgService,
			ClassService:       classService,
			ContextService:     contextService,
			InviteService:      inviteService,
			AuthMiddleware:     authMiddleware,
		},
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
