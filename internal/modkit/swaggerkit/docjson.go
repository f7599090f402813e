package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"convertis/internal/platform/config"
	perr "convertis/internal/platform/errors"

	docs "convertis/internal/services/api/docs"
)

// SpecMutator lets modules tweak the parsed OpenAPI document before it is served
type SpecMutator func(map[string]any)

// mutators is the in process registry for spec mutators
var mutators []SpecMutator

// docReader is a seam so tests can inject invalid JSON
var docReader = func() []byte { return docs.JSON }

// Register adds a spec mutator
// call this from module init so it is wired automatically
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

// serveDocJSON serves the document and lets modules adjust details
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal(docReader(), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		// routes live at the root; meta sits under /api/v1 in the paths themselves
		ensureServers(spec, "/")

		cfg := config.New().Prefix("CORE_API_")
		if v := cfg.MayString("DOCS_TITLE_SUFFIX", ""); v != "" {
			if info, ok := spec["info"].(map[string]any); ok {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + v
				}
			}
		}

		ensureErrorResponseDefinition(spec)
		addDefaultResponse(spec, "500", "Internal Server Error", perr.Wire{
			Message:   perr.MsgInternal,
			Code:      perr.ErrorCodeUnknown,
			RequestID: "convertis/abc-000001",
		})
		addDefaultResponse(spec, "400", "Bad Request", perr.Wire{
			Message:   "Le champ nom est requis",
			Code:      perr.ErrorCodeValidation,
			Field:     "nom",
			RequestID: "convertis/abc-000001",
		})

		for _, m := range mutators {
			m(spec)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		_ = enc.Encode(spec)
	}
}

// ensureServers makes sure the spec is OAS3 and has a servers array
// swagger http ui can't support 3.1 at the moment, so downconvert if needed
func ensureServers(spec map[string]any, url string) {
	if _, hasSwagger := spec["swagger"]; hasSwagger {
		spec["openapi"] = "3.0.3"
		delete(spec, "swagger")
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{
			map[string]any{"url": url},
		}
	}
}

// ensureErrorResponseDefinition adds the ErrorResponse schema if missing
// it mirrors perr.Wire so it does not drift from the runtime body
func ensureErrorResponseDefinition(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"error":      map[string]any{"type": "string"},
			"code":       map[string]any{"type": "integer", "format": "int32"},
			"field":      map[string]any{"type": "string"},
			"request_id": map[string]any{"type": "string"},
		},
		"required": []any{"error", "code"},
	}
}

// addDefaultResponse walks every operation and injects status if absent
func addDefaultResponse(spec map[string]any, status, description string, example perr.Wire) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	resp := map[string]any{
		"description": description,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for method, opAny := range node {
			if method == "parameters" {
				continue
			}
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			if _, exists := responses[status]; !exists {
				responses[status] = resp
			}
		}
	}
}
