package normalize

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"simsea/internal/models"
)

var ErrMalformedSubmission = errors.New("submission must be a JSON object")

// FromJSON reads a JSON object into a Raw. Strings, numbers and booleans are
// taken as text; null means absent. The nested "quarters" and "year_targets"
// shapes produced by the record API are flattened into their column names, so
// a fetched record can be sent back unchanged.
func FromJSON(r io.Reader) (Raw, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSubmission, err)
	}
	if body == nil {
		return nil, ErrMalformedSubmission
	}

	raw := make(Raw, len(body))
	for k, v := range body {
		switch k {
		case "quarters":
			flattenQuarters(raw, v)
		case "year_targets":
			flattenYearTargets(raw, v)
		default:
			if s, ok := scalar(v); ok {
				raw[k] = s
			}
		}
	}
	return raw, nil
}

func scalar(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	}
	return "", false
}

func flattenQuarters(raw Raw, v any) {
	list, ok := v.([]any)
	if !ok {
		return
	}
	for i, item := range list {
		if i >= models.Quarters {
			break
		}
		q, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for _, key := range []string{"planned", "achieved", "budgeted", "disbursed"} {
			if s, ok := scalar(q[key]); ok {
				raw[fmt.Sprintf("q%d_%s", i+1, key)] = s
			}
		}
	}
}

func flattenYearTargets(raw Raw, v any) {
	list, ok := v.([]any)
	if !ok {
		return
	}
	for i, item := range list {
		if i >= models.TargetYears {
			break
		}
		if s, ok := scalar(item); ok {
			raw[fmt.Sprintf("target_%d", models.FirstTargetYear+i)] = s
		}
	}
}
