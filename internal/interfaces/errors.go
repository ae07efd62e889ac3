package interfaces

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrStorageUnavailable = errors.New("storage unavailable, try again later")
	ErrUsernameTaken      = errors.New("username already taken")
)

// ValidationError lists rejected fields with a reason for each. Nothing is
// persisted when it is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Add(field, reason string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = reason
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}
