package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rcet-nz/rteqc-api/app"
	"github.com/rcet-nz/rteqc-api/config"
	"github.com/rcet-nz/rteqc-api/services/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, baseDir string) http.Handler {
	t.Helper()
	cfg := &config.Config{
		Server:        config.ServerConfig{Host: "127.0.0.1", Port: 8000},
		Results:       config.ResultsConfig{BaseDir: baseDir},
		Observability: config.ObservabilityConfig{LogLevel: "info", LogFormat: "json"},
	}
	return SetupRoutes(app.NewDependencies(cfg, zap.NewNop()))
}

func seedTrigger(t *testing.T, baseDir, triggerID string) {
	t.Helper()
	layout := results.NewLayout(baseDir)
	catalog := layout.CatalogPath(triggerID)
	require.NoError(t, os.MkdirAll(filepath.Dir(catalog), 0o755))
	require.NoError(t, os.WriteFile(catalog,
		[]byte("id,time,magnitude\n1,2014-01-01T00:00:00,5.2\n"), 0o644))
}

func get(handler http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestRoutes(t *testing.T) {
	baseDir := t.TempDir()
	seedTrigger(t, baseDir, "2014p051675")
	require.NoError(t, os.MkdirAll(filepath.Join(baseDir, "empty_dir"), 0o755))
	handler := newTestServer(t, baseDir)

	t.Run("healthz", func(t *testing.T) {
		w := get(handler, "/healthz")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("landing page", func(t *testing.T) {
		w := get(handler, "/")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "RT-EQcorrscan")
	})

	t.Run("triggers with and without trailing slash", func(t *testing.T) {
		for _, target := range []string{"/triggers/", "/triggers"} {
			w := get(handler, target)
			require.Equal(t, http.StatusOK, w.Code, target)

			var resp struct {
				TriggerIDs []string `json:"trigger_ids"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, []string{"2014p051675"}, resp.TriggerIDs)
		}
	})

	t.Run("trigger table", func(t *testing.T) {
		w := get(handler, "/trigger_table/")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "2014p051675")
	})

	t.Run("catalog wire format", func(t *testing.T) {
		w := get(handler, "/catalog/?triggerID=2014p051675")
		require.Equal(t, http.StatusOK, w.Code)

		var doc struct {
			Schema struct {
				Fields []struct {
					Name string `json:"name"`
					Type string `json:"type"`
				} `json:"fields"`
			} `json:"schema"`
			Data []map[string]interface{} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		require.Len(t, doc.Schema.Fields, 3)
		assert.Equal(t, "number", doc.Schema.Fields[0].Type)
		assert.Equal(t, "datetime", doc.Schema.Fields[1].Type)
		require.Len(t, doc.Data, 1)
		assert.Equal(t, "2014-01-01T00:00:00", doc.Data[0]["time"])
	})

	t.Run("catalog for unknown trigger is 404", func(t *testing.T) {
		w := get(handler, "/catalog/?triggerID=2099p000000")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("sources missing is 404", func(t *testing.T) {
		w := get(handler, "/sources/?triggerID=2014p051675")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("plot with unknown kind lists known kinds", func(t *testing.T) {
		w := get(handler, "/plots/?triggerID=2014p051675&plot_type=nope")
		require.Equal(t, http.StatusNotFound, w.Code)
		for _, plotType := range results.AllPlotTypes() {
			assert.Contains(t, w.Body.String(), plotType)
		}
	})

	t.Run("plot bytes served", func(t *testing.T) {
		layout := results.NewLayout(baseDir)
		plot := layout.PlotPath("2014p051675", "focal_sphere")
		require.NoError(t, os.MkdirAll(filepath.Dir(plot), 0o755))
		require.NoError(t, os.WriteFile(plot, []byte("png-bytes"), 0o644))

		w := get(handler, "/plots/?triggerID=2014p051675&plot_type=focal_sphere")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "png-bytes", w.Body.String())
	})

	t.Run("traversal attempt is 400", func(t *testing.T) {
		w := get(handler, "/catalog/?triggerID=..%2F..%2Fetc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown route is 404 json", func(t *testing.T) {
		w := get(handler, "/nope")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	})
}

func TestRoutesCORS(t *testing.T) {
	handler := newTestServer(t, t.TempDir())

	req := httptest.NewRequest(http.MethodGet, "/triggers/", nil)
	req.Header.Set("Origin", "https://quakesearch.example.org")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
