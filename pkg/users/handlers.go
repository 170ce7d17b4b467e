// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/task-service/internal/logging"
	"github.com/canonical/task-service/internal/types"
	"github.com/canonical/task-service/pkg/authentication"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/me", a.me)
	mux.Get("/api/v0/users", a.listUsers)
}

type MeResponse struct {
	ID       string   `json:"id"`
	TenantID string   `json:"tenant_id"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Roles    []string `json:"roles"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	userID, tenantID, ok := callerFromContext(r)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	me, err := a.service.GetMe(r.Context(), userID, tenantID)
	if err != nil {
		a.logger.Errorf("failed to load caller profile: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	roles := make([]string, len(me.Roles))
	for i, role := range me.Roles {
		roles[i] = string(role)
	}

	a.writeJSON(w, &MeResponse{
		ID:       me.User.ID,
		TenantID: me.User.TenantID,
		Email:    me.User.Email,
		Name:     me.User.Name,
		Roles:    roles,
	})
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	_, tenantID, ok := callerFromContext(r)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	members, err := a.service.ListUsers(r.Context(), tenantID)
	if err != nil {
		a.logger.Errorf("failed to list tenant users: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := make([]*UserResponse, len(members))
	for i, member := range members {
		resp[i] = newUserResponse(member)
	}

	a.writeJSON(w, resp)
}

func (a *API) writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func newUserResponse(u *types.User) *UserResponse {
	return &UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}

func callerFromContext(r *http.Request) (userID, tenantID string, ok bool) {
	userID, ok = authentication.GetUserID(r.Context())
	if !ok || userID == "" {
		return "", "", false
	}
	tenantID, ok = authentication.GetTenantID(r.Context())
	if !ok || tenantID == "" {
		return "", "", false
	}
	return userID, tenantID, true
}
