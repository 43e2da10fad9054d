package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	docs "workmonitor/internal/services/api/docs"

	"github.com/swaggo/swag/v2"
)

// docReader is swapped in tests
var docReader = func() (string, error) { return swag.ReadDoc(docs.SwaggerInfo.InstanceName()) }

// serveDocJSON serves the registered document with the shared error schema and responses added
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		raw, err := docReader()
		if err != nil {
			http.Error(w, "spec not registered", http.StatusInternalServerError)
			return
		}
		var spec map[string]any
		if err := json.Unmarshal([]byte(raw), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		normalizeVersion(spec)
		ensureErrorSchema(spec)
		addDefaultResponse(spec, "400", "Bad Request", 400, "endDate must not be before startDate")
		addDefaultResponse(spec, "500", "Internal Server Error", 500, "internal error")

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// normalizeVersion pins the document to OAS 3.0.3, the newest the bundled UI renders
func normalizeVersion(spec map[string]any) {
	if _, ok := spec["swagger"]; ok {
		delete(spec, "swagger")
		spec["openapi"] = "3.0.3"
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
}

func ensureErrorSchema(spec map[string]any) {
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
		"type": "object",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// addDefaultResponse adds status to every operation of the enveloped API that lacks it
// webhook paths answer with their own bodies and are skipped
func addDefaultResponse(spec map[string]any, status, text string, code int, example string) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	resp := map[string]any{
		"description": text,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": code,
					"status":      text,
					"error":       example,
				},
			},
		},
	}
	for path, p := range paths {
		if strings.HasPrefix(path, "/api/webhooks") {
			continue
		}
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
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
