// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/canonical/task-service/internal/logging"
)

type fakeTxClient struct {
	commitErr error
	calls     int
	fnErr     error
}

func (c *fakeTxClient) Statement(context.Context) sq.StatementBuilderType {
	return sq.StatementBuilderType{}
}

func (c *fakeTxClient) TxStatement(context.Context) (TxInterface, sq.StatementBuilderType, error) {
	return nil, sq.StatementBuilderType{}, errors.New("not implemented")
}

func (c *fakeTxClient) BeginTx(ctx context.Context) (context.Context, TxInterface, error) {
	return ctx, nil, errors.New("not implemented")
}

func (c *fakeTxClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	c.calls++
	if err := fn(ctx); err != nil {
		c.fnErr = err
		return err
	}
	return c.commitErr
}

func (c *fakeTxClient) Close() {}

type captureLogger struct {
	logging.LoggerInterface
	errorLines []string
}

func (l *captureLogger) Errorf(template string, args ...interface{}) {
	l.errorLines = append(l.errorLines, fmt.Sprintf(template, args...))
}

func newMiddlewareFixture(commitErr error) (*fakeTxClient, *captureLogger, func(http.Handler) http.Handler) {
	client := &fakeTxClient{commitErr: commitErr}
	logger := &captureLogger{LoggerInterface: logging.NewNoopLogger()}
	return client, logger, TransactionMiddleware(client, logger)
}

func TestTransactionMiddleware_SkipsReadRequests(t *testing.T) {
	client, _, middleware := newMiddlewareFixture(nil)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v0/tasks", nil))

	if client.calls != 0 {
		t.Errorf("expected no transaction for GET, got %d", client.calls)
	}
}

func TestTransactionMiddleware_RollsBackOnErrorStatus(t *testing.T) {
	client, logger, middleware := newMiddlewareFixture(nil)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v0/tasks", nil))

	if client.calls != 1 {
		t.Fatalf("expected one transaction, got %d", client.calls)
	}
	if client.fnErr == nil {
		t.Error("expected the error status to force a rollback")
	}
	if len(logger.errorLines) != 0 {
		t.Errorf("expected no commit-failure log on rollback, got %v", logger.errorLines)
	}
}

func TestTransactionMiddleware_LogsCommitFailure(t *testing.T) {
	_, logger, middleware := newMiddlewareFixture(errors.New("connection reset during commit"))

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v0/tasks", nil))

	if len(logger.errorLines) != 1 {
		t.Fatalf("expected one logged commit failure, got %v", logger.errorLines)
	}
	if !strings.Contains(logger.errorLines[0], "commit failed") {
		t.Errorf("expected commit failure message, got %q", logger.errorLines[0])
	}
}
