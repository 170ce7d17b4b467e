// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package task

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/task-service/internal/logging"
)

// maxAttachmentMemory bounds the in-memory part of multipart parsing;
// larger files spill to disk.
const maxAttachmentMemory = 32 << 20

type API struct {
	service  ServiceInterface
	validate *validator.Validate
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/tasks", a.createTask)
	mux.Get("/api/v0/tasks", a.listTasks)
	mux.Get("/api/v0/tasks/{id}", a.getTask)
	mux.Patch("/api/v0/tasks/{id}", a.updateTask)
	mux.Delete("/api/v0/tasks/{id}", a.deleteTask)
	mux.Get("/api/v0/tasks/{id}/history", a.getHistory)
	mux.Post("/api/v0/tasks/{id}/attachments", a.addAttachment)
	mux.Get("/api/v0/tasks/{id}/attachments", a.listAttachments)
	mux.Delete("/api/v0/tasks/{id}/attachments/{attachmentID}", a.deleteAttachment)
}

func (a *API) createTask(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		a.writeUnauthenticated(w)
		return
	}

	req := new(CreateTaskRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.writeValidation(w, "", "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeValidatorError(w, err)
		return
	}

	created, err := a.service.CreateTask(r.Context(), caller, req)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, NewTaskResponse(created))
}

func (a *API) listTasks(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		a.writeUnauthenticated(w)
		return
	}

	req := &ListTasksRequest{
		Status: r.URL.Query().Get("status"),
		Page:   parseQueryInt(r, "page"),
		Size:   parseQueryInt(r, "size"),
	}

	tasks, err := a.service.ListTasks(r.Context(), caller, req)
	if err != nil {
		a.writeError(w, err)
		return
	}

	resp := make([]*TaskResponse, len(tasks))
	for i, t := range tasks {
		resp[i] = NewTaskResponse(t)
	}

	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) getTask(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		a.writeUnauthenticated(w)
		return
	}

	t, err := a.service.GetTask(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, NewTaskResponse(t))
}

func (a *API) updateTask(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		a.writeUnauthenticated(w)
		return
	}

	req := new(UpdateTaskRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.writeValidation(w, "", "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeValidatorError(w, err)
		return
	}

	updated, err := a.service.UpdateTask(r.Context(), caller, chi.URLParam(r, "id"), req)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, NewTaskResponse(updated))
}

func (a *API) deleteTask(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		a.writeUnauthenticated(w)
		return
	}

	if err := a.service.DeleteTask(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) getHistory(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		a.writeUnauthenticated(w)
		return
	}

	history, err := a.service.GetHistory(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	resp := make([]*HistoryResponse, len(history))
	for i, h := range history {
		resp[i] = NewHistoryResponse(h)
	}

	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) addAttachment(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		a.writeUnauthenticated(w)
		return
	}

	if err := r.ParseMultipartForm(maxAttachmentMemory); err != nil {
		a.writeValidation(w, "file", "invalid multipart body")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		a.writeValidation(w, "file", "file part is required")
		return
	}
	defer file.Close()

	upload := &AttachmentUpload{
		Filename: header.Filename,
		Type:     r.FormValue("type"),
		Content:  file,
	}

	created, err := a.service.AddAttachment(r.Context(), caller, chi.URLParam(r, "id"), upload)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, NewAttachmentResponse(created))
}

func (a *API) listAttachments(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		a.writeUnauthenticated(w)
		return
	}

	attachments, err := a.service.ListAttachments(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	resp := make([]*AttachmentResponse, len(attachments))
	for i, att := range attachments {
		resp[i] = NewAttachmentResponse(att)
	}

	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) deleteAttachment(w http.ResponseWriter, r *http.Request) {
	caller, ok := CallerFromContext(r.Context())
	if !ok {
		a.writeUnauthenticated(w)
		return
	}

	err := a.service.DeleteAttachment(r.Context(), caller, chi.URLParam(r, "id"), chi.URLParam(r, "attachmentID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

// writeError maps service errors to the wire contract. Anything that is not
// a typed *Error is an internal failure and stays opaque to the client.
func (a *API) writeError(w http.ResponseWriter, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		a.logger.Errorf("request failed: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	a.writeJSON(w, httpStatusFor(apiErr.Code), &ErrorResponse{
		Code:    string(apiErr.Code),
		Message: apiErr.Message,
		Field:   apiErr.Field,
	})
}

func (a *API) writeValidation(w http.ResponseWriter, field, message string) {
	a.writeError(w, NewValidationError(field, message))
}

func (a *API) writeValidatorError(w http.ResponseWriter, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		a.writeValidation(w, fe.Field(), "failed on the '"+fe.Tag()+"' constraint")
		return
	}
	a.writeValidation(w, "", err.Error())
}

func (a *API) writeUnauthenticated(w http.ResponseWriter) {
	a.writeJSON(w, http.StatusUnauthorized, &ErrorResponse{
		Code:    string(CodeDenied),
		Message: "unauthenticated",
	})
}

func httpStatusFor(code ErrorCode) int {
	switch code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeDenied:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeVersionConflict:
		return http.StatusConflict
	case CodeInvalidTransition:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func parseQueryInt(r *http.Request, key string) int64 {
	v, err := strconv.ParseInt(r.URL.Query().Get(key), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
