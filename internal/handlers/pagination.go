package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"simsea/internal/interfaces"
	"simsea/internal/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func queryInt(r *http.Request, key string, def int) int {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// pagination reads page (1-based) and page_size, clamped to sane bounds.
func pagination(r *http.Request) (page, pageSize int) {
	page = queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize = queryInt(r, "page_size", defaultPageSize)
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// recordFilter reads the list filters. Non-admins are always scoped to their
// own records whatever created_by says.
func recordFilter(r *http.Request, actor models.Actor) interfaces.RecordFilter {
	q := r.URL.Query()
	filter := interfaces.RecordFilter{
		People:    q.Get("people"),
		Country:   q.Get("country"),
		CreatedBy: q.Get("created_by"),
	}
	if !actor.IsAdmin() {
		filter.CreatedBy = actor.Username
		filter.OwnerOnly = true
	}
	return filter
}
