// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package directory resolves tenant-scoped role grants. It is the only
// component that reads grant storage; authorization decisions go through it
// rather than inspecting grants directly.
package directory

import (
	"context"
	"fmt"

	"github.com/canonical/task-service/internal/logging"
	"github.com/canonical/task-service/internal/monitoring"
	"github.com/canonical/task-service/internal/tracing"
	"github.com/canonical/task-service/internal/types"
)

type RoleSet map[types.Role]struct{}

func (s RoleSet) Has(role types.Role) bool {
	_, ok := s[role]
	return ok
}

func (s RoleSet) Roles() []types.Role {
	roles := make([]types.Role, 0, len(s))
	for _, r := range []types.Role{types.RoleAdmin, types.RoleTaskCreator, types.RoleTaskReceiver} {
		if s.Has(r) {
			roles = append(roles, r)
		}
	}
	return roles
}

var _ DirectoryInterface = (*Directory)(nil)

type Directory struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewDirectory(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Directory {
	d := new(Directory)

	d.storage = storage

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}

func (d *Directory) GrantedRoles(ctx context.Context, userID, tenantID string) (RoleSet, error) {
	ctx, span := d.tracer.Start(ctx, "directory.Directory.GrantedRoles")
	defer span.End()

	grants, err := d.storage.ListRoleGrants(ctx, userID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve role grants: %w", err)
	}

	roles := make(RoleSet, len(grants))
	for _, g := range grants {
		roles[g.Role] = struct{}{}
	}

	return roles, nil
}
