// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/task-service/internal/db"
	"github.com/canonical/task-service/internal/identity"
	"github.com/canonical/task-service/internal/logging"
	"github.com/canonical/task-service/internal/monitoring"
	"github.com/canonical/task-service/internal/storage"
	"github.com/canonical/task-service/internal/tracing"
	"github.com/canonical/task-service/pkg/metrics"
	"github.com/canonical/task-service/pkg/status"
	"github.com/canonical/task-service/pkg/task"
	"github.com/canonical/task-service/pkg/users"
)

func NewRouter(
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	taskService task.ServiceInterface,
	usersService users.ServiceInterface,
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
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	// Unauthenticated surface.
	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	// Everything below resolves the caller and runs inside a lazy request
	// transaction, so a task mutation and its history row commit together.
	router.Group(func(r chi.Router) {
		r.Use(identity.NewMiddleware(s, tracer, monitor, logger).HTTPMiddleware)
		r.Use(db.TransactionMiddleware(dbClient, logger))

		mux := r.(*chi.Mux)
		task.NewAPI(taskService, logger).RegisterEndpoints(mux)
		users.NewAPI(usersService, logger).RegisterEndpoints(mux)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", identity.UserHeaderName, identity.RoleHeaderName},
			MaxAge:         300,
		},
	)
}
