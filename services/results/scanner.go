package results

import (
	"fmt"
	"os"
	"sort"

	"github.com/rcet-nz/rteqc-api/services"
	"go.uber.org/zap"
)

// Scanner discovers trigger runs with results on disk. Every call re-scans
// the filesystem: the trigger set is a live view of pipeline output, never
// cached.
type Scanner struct {
	layout Layout
	strict bool
	logger *zap.Logger
}

// NewScanner creates a Scanner over layout. In strict mode a missing or
// unreadable base directory is an error; otherwise it yields an empty
// trigger list, the legacy behaviour existing clients depend on.
func NewScanner(layout Layout, strict bool, logger *zap.Logger) *Scanner {
	return &Scanner{
		layout: layout,
		strict: strict,
		logger: logger,
	}
}

// ListTriggers returns the IDs of the immediate subdirectories of the base
// directory that contain a catalog file, sorted lexicographically.
func (s *Scanner) ListTriggers() ([]string, error) {
	entries, err := os.ReadDir(s.layout.BaseDir)
	if err != nil {
		if s.strict {
			return nil, services.WrapError(services.ErrorTypeUnavailable,
				fmt.Sprintf("cannot read detection output directory %s", s.layout.BaseDir), err)
		}
		s.logger.Warn("detection output directory unavailable",
			zap.String("dir", s.layout.BaseDir),
			zap.Error(err))
		return []string{}, nil
	}

	triggers := []string{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		triggerID := entry.Name()
		s.logger.Debug("scanning for output", zap.String("trigger_id", triggerID))

		if fileExists(s.layout.CatalogPath(triggerID)) {
			triggers = append(triggers, triggerID)
		}
	}

	sort.Strings(triggers)
	return triggers, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
