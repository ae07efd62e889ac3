package handlers

import (
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"

	"simsea/internal/calc"
	"simsea/internal/config"
	"simsea/internal/guard"
	"simsea/internal/interfaces"
	"simsea/internal/middleware"
	"simsea/internal/models"
	"simsea/internal/normalize"
)

type RecordHandler struct {
	records  interfaces.RecordRepository
	sessions sessions.Store
	logger   logrus.FieldLogger
}

func NewRecordHandler(records interfaces.RecordRepository, store sessions.Store, logger logrus.FieldLogger) *RecordHandler {
	return &RecordHandler{records: records, sessions: store, logger: logger}
}

const maxFormMemory = 1 << 20

func recordID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// readSubmission decodes a JSON or form-encoded body into a normalized record.
func readSubmission(r *http.Request) (models.ProjectRecord, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var raw normalize.Raw
	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return models.ProjectRecord{}, normalize.ErrMalformedSubmission
		}
		raw = normalize.FromForm(r.PostForm)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return models.ProjectRecord{}, normalize.ErrMalformedSubmission
		}
		raw = normalize.FromForm(r.PostForm)
	default:
		var err error
		raw, err = normalize.FromJSON(r.Body)
		if err != nil {
			return models.ProjectRecord{}, err
		}
	}
	return normalize.Record(raw), nil
}

// @Tags Records
// @Summary Submit a project record
// @Description Accepts JSON or form-encoded fields. Derived fields are computed server side.
// @Security BearerAuth
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param body body models.ProjectRecord true "Record fields"
// @Success 201 {object} models.ProjectRecord
// @Failure 400 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/records [post]
func (h *RecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFromContext(r.Context())

	rec, err := readSubmission(r)
	if err != nil {
		writeServiceError(w, h.logger, "CreateRecord", err)
		return
	}
	rec.CreatedBy = actor.Username

	if _, err := h.records.Create(r.Context(), &rec); err != nil {
		writeServiceError(w, h.logger, "CreateRecord", err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// @Tags Records
// @Summary List project records
// @Description Non-admin callers only see their own records.
// @Security BearerAuth
// @Produce json
// @Param people query string false "People / nationality contains"
// @Param country query string false "Country"
// @Param created_by query string false "Creator contains (admin only)"
// @Param page query int false "Page, 1-based"
// @Param page_size query int false "Page size"
// @Success 200 {object} models.RecordListResponse
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/records [get]
func (h *RecordHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFromContext(r.Context())
	page, pageSize := pagination(r)

	filter := recordFilter(r, actor)
	total, err := h.records.Count(r.Context(), filter)
	if err != nil {
		writeServiceError(w, h.logger, "ListRecords", err)
		return
	}

	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize
	records, err := h.records.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, h.logger, "ListRecords", err)
		return
	}
	if records == nil {
		records = []models.ProjectRecord{}
	}

	writeJSON(w, http.StatusOK, models.RecordListResponse{
		Records:  records,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	})
}

// @Tags Records
// @Summary Summarize project records
// @Security BearerAuth
// @Produce json
// @Param people query string false "People / nationality contains"
// @Param country query string false "Country"
// @Param created_by query string false "Creator contains"
// @Success 200 {object} models.RecordSummary
// @Failure 403 {object} map[string]interface{}
// @Router /api/v1/records/summary [get]
func (h *RecordHandler) SummarizeRecords(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFromContext(r.Context())

	records, err := h.records.List(r.Context(), recordFilter(r, actor))
	if err != nil {
		writeServiceError(w, h.logger, "SummarizeRecords", err)
		return
	}
	writeJSON(w, http.StatusOK, calc.Summarize(records))
}

// @Tags Records
// @Summary Get a project record
// @Security BearerAuth
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} models.ProjectRecord
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/records/{id} [get]
func (h *RecordHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(r)
	if !ok {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid record ID")
		return
	}
	actor, _ := middleware.ActorFromContext(r.Context())

	rec, err := h.records.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, "GetRecord", err)
		return
	}
	if !guard.CanMutateRecord(rec, actor) {
		writeServiceError(w, h.logger, "GetRecord", interfaces.ErrPermissionDenied)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// @Tags Records
// @Summary Replace a project record
// @Security BearerAuth
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path int true "Record ID"
// @Param body body models.ProjectRecord true "Record fields"
// @Success 200 {object} models.ProjectRecord
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/records/{id} [put]
func (h *RecordHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(r)
	if !ok {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid record ID")
		return
	}
	actor, _ := middleware.ActorFromContext(r.Context())

	rec, err := readSubmission(r)
	if err != nil {
		writeServiceError(w, h.logger, "UpdateRecord", err)
		return
	}
	if err := h.records.Update(r.Context(), id, &rec, actor); err != nil {
		writeServiceError(w, h.logger, "UpdateRecord", err)
		return
	}

	updated, err := h.records.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, "UpdateRecord", err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// @Tags Records
// @Summary Mark a record for deletion
// @Description First step of the two-step delete. The record is untouched until confirmed.
// @Security BearerAuth
// @Produce json
// @Param id path int true "Record ID"
// @Success 202 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/records/{id} [delete]
func (h *RecordHandler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(r)
	if !ok {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid record ID")
		return
	}
	actor, _ := middleware.ActorFromContext(r.Context())

	rec, err := h.records.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, "RequestDelete", err)
		return
	}
	if !guard.CanMutateRecord(rec, actor) {
		writeServiceError(w, h.logger, "RequestDelete", interfaces.ErrPermissionDenied)
		return
	}

	flow := middleware.LoadDeleteFlow(r, h.sessions).Request(id)
	if err := middleware.SaveDeleteFlow(w, r, h.sessions, flow); err != nil {
		writeServiceError(w, h.logger, "RequestDelete", err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{
		"message": "Record marked for deletion, confirm to delete",
		"pending": flow.Pending,
	})
}

// @Tags Records
// @Summary Confirm a pending deletion
// @Security BearerAuth
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /api/v1/records/{id}/delete/confirm [post]
func (h *RecordHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(r)
	if !ok {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid record ID")
		return
	}
	actor, _ := middleware.ActorFromContext(r.Context())

	next, err := middleware.LoadDeleteFlow(r, h.sessions).Confirm(id)
	if err != nil {
		writeServiceError(w, h.logger, "ConfirmDelete", err)
		return
	}

	if err := h.records.Delete(r.Context(), id, actor); err != nil {
		// Only transient failures keep the mark, so the confirmation can be retried.
		if errors.Is(err, interfaces.ErrNotFound) || errors.Is(err, interfaces.ErrPermissionDenied) {
			if saveErr := middleware.SaveDeleteFlow(w, r, h.sessions, next); saveErr != nil && h.logger != nil {
				config.LogError(h.logger, "handlers", "ConfirmDelete", "clear pending delete", map[string]any{"id": id}, saveErr)
			}
		}
		writeServiceError(w, h.logger, "ConfirmDelete", err)
		return
	}
	if err := middleware.SaveDeleteFlow(w, r, h.sessions, next); err != nil {
		writeServiceError(w, h.logger, "ConfirmDelete", err)
		return
	}
	writeJSONMessage(w, http.StatusOK, "Record deleted")
}

// @Tags Records
// @Summary Cancel the pending deletion
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/records/delete/cancel [post]
func (h *RecordHandler) CancelDelete(w http.ResponseWriter, r *http.Request) {
	flow := middleware.LoadDeleteFlow(r, h.sessions).Cancel()
	if err := middleware.SaveDeleteFlow(w, r, h.sessions, flow); err != nil {
		writeServiceError(w, h.logger, "CancelDelete", err)
		return
	}
	writeJSONMessage(w, http.StatusOK, "Deletion cancelled")
}
