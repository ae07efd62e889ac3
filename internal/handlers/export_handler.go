package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"simsea/internal/export"
	"simsea/internal/interfaces"
	"simsea/internal/middleware"
	"simsea/internal/services"
)

const headerExportFallback = "X-Export-Fallback"

type ExportHandler struct {
	records   interfaces.RecordRepository
	exporter  *export.Exporter
	publisher *services.ExportPublisher
	logger    logrus.FieldLogger
}

// NewExportHandler accepts a nil publisher; publishing then answers 503.
func NewExportHandler(records interfaces.RecordRepository, exporter *export.Exporter, publisher *services.ExportPublisher, logger logrus.FieldLogger) *ExportHandler {
	return &ExportHandler{records: records, exporter: exporter, publisher: publisher, logger: logger}
}

func (h *ExportHandler) render(r *http.Request, format export.Format) (*export.Result, error) {
	actor, _ := middleware.ActorFromContext(r.Context())
	records, err := h.records.List(r.Context(), recordFilter(r, actor))
	if err != nil {
		return nil, err
	}
	return h.exporter.Export(records, format)
}

func (h *ExportHandler) download(w http.ResponseWriter, r *http.Request, format export.Format) {
	res, err := h.render(r, format)
	if err != nil {
		writeServiceError(w, h.logger, "Export", err)
		return
	}

	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+res.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Data)))
	if res.Fallback() {
		w.Header().Set(headerExportFallback, string(export.FormatCSV))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Data)
}

// @Tags Exports
// @Summary Export records as CSV
// @Security BearerAuth
// @Produce text/csv
// @Param people query string false "People / nationality contains"
// @Param country query string false "Country"
// @Param created_by query string false "Creator contains"
// @Success 200 {file} file
// @Failure 403 {object} map[string]interface{}
// @Router /api/v1/exports/records.csv [get]
func (h *ExportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, export.FormatCSV)
}

// @Tags Exports
// @Summary Export records as xlsx
// @Description Falls back to CSV content, flagged by the X-Export-Fallback header, when spreadsheets are unavailable.
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param people query string false "People / nationality contains"
// @Param country query string false "Country"
// @Param created_by query string false "Creator contains"
// @Success 200 {file} file
// @Failure 403 {object} map[string]interface{}
// @Router /api/v1/exports/records.xlsx [get]
func (h *ExportHandler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, export.FormatXLSX)
}

// @Tags Exports
// @Summary Publish an export to S3
// @Security BearerAuth
// @Produce json
// @Param format query string false "csv or xlsx" default(xlsx)
// @Success 201 {object} services.PublishedExport
// @Failure 400 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/exports/publish [post]
func (h *ExportHandler) PublishExport(w http.ResponseWriter, r *http.Request) {
	formatParam := r.URL.Query().Get("format")
	if formatParam == "" {
		formatParam = string(export.FormatXLSX)
	}
	format, err := export.ParseFormat(formatParam)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if h.publisher == nil {
		writeJSONErrorResponse(w, http.StatusServiceUnavailable, "publishing_disabled", services.ErrPublishingDisabled.Error())
		return
	}

	res, err := h.render(r, format)
	if err != nil {
		writeServiceError(w, h.logger, "PublishExport", err)
		return
	}

	published, err := h.publisher.Publish(r.Context(), res)
	if err != nil {
		if errors.Is(err, services.ErrPublishingDisabled) {
			writeJSONErrorResponse(w, http.StatusServiceUnavailable, "publishing_disabled", err.Error())
			return
		}
		writeServiceError(w, h.logger, "PublishExport", err)
		return
	}
	writeJSON(w, http.StatusCreated, published)
}
