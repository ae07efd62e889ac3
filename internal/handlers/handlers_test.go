package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus/hooks/test"

	"simsea/internal/calc"
	"simsea/internal/export"
	"simsea/internal/guard"
	"simsea/internal/interfaces"
	"simsea/internal/middleware"
	"simsea/internal/models"
	"simsea/internal/services"
	"simsea/internal/validation"
)

const testSecret = "test-secret"

var (
	ana   = models.Actor{Username: "ana", Role: models.RoleUser}
	luis  = models.Actor{Username: "luis", Role: models.RoleUser}
	admin = models.Actor{Username: "root", Role: models.RoleAdmin}
)

// memRecordRepo mirrors the repository contract: derive, validate, then store.
type memRecordRepo struct {
	records   map[int64]models.ProjectRecord
	nextID    int64
	validator *validation.Validator
	err       error
}

var _ interfaces.RecordRepository = (*memRecordRepo)(nil)

func newMemRecordRepo() *memRecordRepo {
	return &memRecordRepo{records: map[int64]models.ProjectRecord{}, validator: validation.New()}
}

func (m *memRecordRepo) seed(name, owner string) int64 {
	m.nextID++
	m.records[m.nextID] = calc.Derive(models.ProjectRecord{ID: m.nextID, ProjectName: name, CreatedBy: owner, Men: 1})
	return m.nextID
}

func (m *memRecordRepo) Create(ctx context.Context, rec *models.ProjectRecord) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	derived := calc.Derive(*rec)
	if err := m.validator.Record(&derived); err != nil {
		return 0, err
	}
	m.nextID++
	derived.ID = m.nextID
	m.records[derived.ID] = derived
	*rec = derived
	return derived.ID, nil
}

func (m *memRecordRepo) GetByID(ctx context.Context, id int64) (*models.ProjectRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	rec, ok := m.records[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return &rec, nil
}

func (m *memRecordRepo) matching(filter interfaces.RecordFilter) []models.ProjectRecord {
	var out []models.ProjectRecord
	for _, rec := range m.records {
		if filter.OwnerOnly && rec.CreatedBy != filter.CreatedBy {
			continue
		}
		if !filter.OwnerOnly && filter.CreatedBy != "" && !strings.Contains(strings.ToLower(rec.CreatedBy), strings.ToLower(filter.CreatedBy)) {
			continue
		}
		if filter.Country != "" && rec.Country != filter.Country {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (m *memRecordRepo) List(ctx context.Context, filter interfaces.RecordFilter) ([]models.ProjectRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := m.matching(filter)
	if filter.Offset >= len(out) {
		return nil, nil
	}
	out = out[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m *memRecordRepo) Count(ctx context.Context, filter interfaces.RecordFilter) (int, error) {
	return len(m.matching(filter)), m.err
}

func (m *memRecordRepo) Update(ctx context.Context, id int64, rec *models.ProjectRecord, actor models.Actor) error {
	if m.err != nil {
		return m.err
	}
	existing, ok := m.records[id]
	if !ok {
		return interfaces.ErrNotFound
	}
	if !guard.CanMutateRecord(&existing, actor) {
		return interfaces.ErrPermissionDenied
	}
	derived := calc.Derive(*rec)
	if err := m.validator.Record(&derived); err != nil {
		return err
	}
	derived.ID = id
	derived.CreatedBy = existing.CreatedBy
	m.records[id] = derived
	return nil
}

func (m *memRecordRepo) Delete(ctx context.Context, id int64, actor models.Actor) error {
	if m.err != nil {
		return m.err
	}
	existing, ok := m.records[id]
	if !ok {
		return interfaces.ErrNotFound
	}
	if !guard.CanMutateRecord(&existing, actor) {
		return interfaces.ErrPermissionDenied
	}
	delete(m.records, id)
	return nil
}

// client carries the session cookie from one request to the next.
type client struct {
	t       *testing.T
	router  http.Handler
	actor   models.Actor
	cookies map[string]*http.Cookie
}

func newClient(t *testing.T, router http.Handler, actor models.Actor) *client {
	return &client{t: t, router: router, actor: actor, cookies: map[string]*http.Cookie{}}
}

func (c *client) do(method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	if c.actor.Username != "" {
		req = req.WithContext(middleware.WithActor(req.Context(), c.actor))
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		c.cookies[ck.Name] = ck
	}
	return w
}

func newTestRecordRouter(repo interfaces.RecordRepository) chi.Router {
	logger, _ := test.NewNullLogger()
	return recordRoutes(NewRecordHandler(repo, middleware.NewSessionStore(testSecret, false), logger))
}

func recordRoutes(h *RecordHandler) chi.Router {
	r := chi.NewRouter()
	r.Route("/api/v1/records", func(r chi.Router) {
		r.Get("/", h.ListRecords)
		r.Post("/", h.CreateRecord)
		r.Get("/summary", h.SummarizeRecords)
		r.Post("/delete/cancel", h.CancelDelete)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetRecord)
			r.Put("/", h.UpdateRecord)
			r.Delete("/", h.RequestDelete)
			r.Post("/delete/confirm", h.ConfirmDelete)
		})
	})
	return r
}

func newTestExportRouter(repo interfaces.RecordRepository, exporter *export.Exporter, publisher *services.ExportPublisher) chi.Router {
	logger, _ := test.NewNullLogger()
	h := NewExportHandler(repo, exporter, publisher, logger)

	r := chi.NewRouter()
	r.Get("/api/v1/exports/records.csv", h.ExportCSV)
	r.Get("/api/v1/exports/records.xlsx", h.ExportXLSX)
	r.Post("/api/v1/exports/publish", h.PublishExport)
	return r
}
