package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDocument(t *testing.T) *openapi3.T {
	t.Helper()

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("openapi.yml")
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))
	return doc
}

func TestOpenAPI_DocumentIsValid(t *testing.T) {
	doc := loadDocument(t)

	assert.Equal(t, "Workshop API", doc.Info.Title)
}

func TestOpenAPI_DeclaresEveryRoute(t *testing.T) {
	doc := loadDocument(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health"},
		{http.MethodPost, "/auth/login"},
		{http.MethodPost, "/api/v1/clients"},
		{http.MethodGet, "/api/v1/clients"},
		{http.MethodPost, "/api/v1/vehicles"},
		{http.MethodGet, "/api/v1/vehicles"},
		{http.MethodPost, "/api/v1/services"},
		{http.MethodGet, "/api/v1/services"},
		{http.MethodPost, "/api/v1/parts"},
		{http.MethodGet, "/api/v1/parts"},
		{http.MethodPost, "/api/v1/parts/{id}/restock"},
		{http.MethodPost, "/api/v1/work-orders"},
		{http.MethodGet, "/api/v1/work-orders"},
		{http.MethodGet, "/api/v1/work-orders/{id}"},
		{http.MethodDelete, "/api/v1/work-orders/{id}"},
		{http.MethodPost, "/api/v1/work-orders/{id}/attach"},
		{http.MethodPost, "/api/v1/work-orders/{id}/items"},
		{http.MethodPatch, "/api/v1/work-orders/{id}/status"},
		{http.MethodPost, "/api/v1/work-orders/{id}/approve"},
		{http.MethodPost, "/api/v1/work-orders/{id}/reject"},
	}

	for _, route := range routes {
		item := doc.Paths.Find(route.path)
		require.NotNil(t, item, "missing path %s", route.path)
		assert.NotNil(t, item.GetOperation(route.method), "missing %s %s", route.method, route.path)
	}
}

func TestOpenAPI_StatusEnumMatchesLifecycle(t *testing.T) {
	doc := loadDocument(t)

	status := doc.Components.Schemas["Status"]
	require.NotNil(t, status)

	values := make([]string, 0, len(status.Value.Enum))
	for _, v := range status.Value.Enum {
		values = append(values, v.(string))
	}

	assert.Equal(t, []string{
		"received", "in_diagnosis", "awaiting_approval",
		"in_execution", "finished", "canceled", "delivered",
	}, values)
}
