package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDocDescribesAPIRoutes(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "RSVP API", doc.Info.Title)
	for path, method := range map[string]string{
		"/confirmar-presenca":    "post",
		"/admin/login":           "post",
		"/admin/confirmados":     "get",
		"/admin/confirmados/csv": "get",
	} {
		assert.Contains(t, doc.Paths[path], method, path)
	}
}
