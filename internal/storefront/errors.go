// Package storefront holds what the page-level packages share.
package storefront

import (
	"sort"
	"strings"
)

// FieldErrors carries per-field validation messages in the shopper's language.
type FieldErrors struct {
	Fields map[string]string `json:"fields"`
	order  []string
}

func (e *FieldErrors) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, dup := e.Fields[field]; !dup {
		e.order = append(e.order, field)
	}
	e.Fields[field] = msg
}

// Empty reports whether no field failed. A nil receiver is empty.
func (e *FieldErrors) Empty() bool { return e == nil || len(e.Fields) == 0 }

// First is the message of the first field that failed, for toast-style display.
func (e *FieldErrors) First() string {
	if e.Empty() {
		return ""
	}
	return e.Fields[e.order[0]]
}

func (e *FieldErrors) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

// OrNil returns nil when no field failed so callers can return it as an error.
func (e *FieldErrors) OrNil() *FieldErrors {
	if e.Empty() {
		return nil
	}
	return e
}
