package api

import "github.com/tooloolooz/bumazhka/pkg/grn"

// ValidateRequest is the HTTP request body for POST /v1/validate.
type ValidateRequest struct {
	Number string `json:"number"`
	Type   string `json:"type,omitempty"`
}

// ResolveType parses the requested type, defaulting to any-type detection
// when the field is omitted.
func (r ValidateRequest) ResolveType() (grn.Type, error) {
	if r.Type == "" {
		return grn.TypeAny, nil
	}
	return grn.ParseType(r.Type)
}
