package results

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rcet-nz/rteqc-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// addTrigger creates a trigger directory, with a catalog file when
// withCatalog is set.
func addTrigger(t *testing.T, baseDir, triggerID string, withCatalog bool) {
	t.Helper()
	layout := NewLayout(baseDir)
	catalog := layout.CatalogPath(triggerID)
	if withCatalog {
		require.NoError(t, os.MkdirAll(filepath.Dir(catalog), 0o755))
		require.NoError(t, os.WriteFile(catalog, []byte("id,time,magnitude\n"), 0o644))
	} else {
		require.NoError(t, os.MkdirAll(filepath.Join(baseDir, triggerID), 0o755))
	}
}

func TestListTriggers(t *testing.T) {
	t.Run("spec scenario", func(t *testing.T) {
		baseDir := t.TempDir()
		addTrigger(t, baseDir, "2014p051675", true)
		addTrigger(t, baseDir, "empty_dir", false)

		scanner := NewScanner(NewLayout(baseDir), false, zap.NewNop())
		triggers, err := scanner.ListTriggers()
		require.NoError(t, err)
		assert.Equal(t, []string{"2014p051675"}, triggers)
	})

	t.Run("sorted output", func(t *testing.T) {
		baseDir := t.TempDir()
		addTrigger(t, baseDir, "2023p999999", true)
		addTrigger(t, baseDir, "2014p051675", true)
		addTrigger(t, baseDir, "2020p222222", true)

		scanner := NewScanner(NewLayout(baseDir), false, zap.NewNop())
		triggers, err := scanner.ListTriggers()
		require.NoError(t, err)
		assert.Equal(t, []string{"2014p051675", "2020p222222", "2023p999999"}, triggers)
	})

	t.Run("live view tracks filesystem changes", func(t *testing.T) {
		baseDir := t.TempDir()
		scanner := NewScanner(NewLayout(baseDir), false, zap.NewNop())

		triggers, err := scanner.ListTriggers()
		require.NoError(t, err)
		assert.Empty(t, triggers)

		addTrigger(t, baseDir, "2014p051675", true)
		triggers, err = scanner.ListTriggers()
		require.NoError(t, err)
		assert.Equal(t, []string{"2014p051675"}, triggers)

		require.NoError(t, os.Remove(NewLayout(baseDir).CatalogPath("2014p051675")))
		triggers, err = scanner.ListTriggers()
		require.NoError(t, err)
		assert.Empty(t, triggers)
	})

	t.Run("plain files in base dir are skipped", func(t *testing.T) {
		baseDir := t.TempDir()
		addTrigger(t, baseDir, "2014p051675", true)
		require.NoError(t, os.WriteFile(filepath.Join(baseDir, "notes.txt"), []byte("x"), 0o644))

		scanner := NewScanner(NewLayout(baseDir), false, zap.NewNop())
		triggers, err := scanner.ListTriggers()
		require.NoError(t, err)
		assert.Equal(t, []string{"2014p051675"}, triggers)
	})

	t.Run("catalog path that is a directory does not count", func(t *testing.T) {
		baseDir := t.TempDir()
		layout := NewLayout(baseDir)
		require.NoError(t, os.MkdirAll(layout.CatalogPath("2014p051675"), 0o755))

		scanner := NewScanner(layout, false, zap.NewNop())
		triggers, err := scanner.ListTriggers()
		require.NoError(t, err)
		assert.Empty(t, triggers)
	})

	t.Run("missing base dir legacy mode", func(t *testing.T) {
		scanner := NewScanner(NewLayout(filepath.Join(t.TempDir(), "missing")), false, zap.NewNop())
		triggers, err := scanner.ListTriggers()
		require.NoError(t, err)
		assert.Empty(t, triggers)
	})

	t.Run("missing base dir strict mode", func(t *testing.T) {
		scanner := NewScanner(NewLayout(filepath.Join(t.TempDir(), "missing")), true, zap.NewNop())
		_, err := scanner.ListTriggers()
		require.Error(t, err)
		assert.True(t, services.IsUnavailableError(err))
	})
}
