// Package results maps trigger identifiers to the files the RT-EQcorrscan
// pipeline writes for each detection run, and discovers which runs have
// results on disk.
package results

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rcet-nz/rteqc-api/services"
)

// Pipeline output filenames, relative to {base}/{id}/{id}/.
const (
	catalogRelPath = "output_out/catalog.csv"
	sourcesRelPath = "plotter_out/output_metrics_summary_file.csv"
	plotDirName    = "plotter_out"
	plotSuffix     = "_latest.png"
)

// Layout resolves trigger identifiers to pipeline output paths under a
// fixed base directory. Resolution is pure string construction: no
// existence checks, no normalisation. The trigger ID appears twice in
// every path; that nesting is the pipeline's output convention.
type Layout struct {
	BaseDir string
}

// NewLayout returns a Layout rooted at baseDir.
func NewLayout(baseDir string) Layout {
	return Layout{BaseDir: baseDir}
}

// CatalogPath returns the path of the trigger's detected-event catalog.
func (l Layout) CatalogPath(triggerID string) string {
	return filepath.Join(l.BaseDir, triggerID, triggerID, filepath.FromSlash(catalogRelPath))
}

// SourcesPath returns the path of the trigger's source-parameter summary.
func (l Layout) SourcesPath(triggerID string) string {
	return filepath.Join(l.BaseDir, triggerID, triggerID, filepath.FromSlash(sourcesRelPath))
}

// PlotPath returns the path of the latest rendered plot of the given kind.
func (l Layout) PlotPath(triggerID, plotType string) string {
	return filepath.Join(l.BaseDir, triggerID, triggerID, plotDirName, plotType+plotSuffix)
}

// ValidateTriggerID rejects identifiers that could escape the base
// directory when interpolated into a path. Trigger IDs are opaque upstream
// event IDs and never legitimately contain separators or traversal tokens.
func ValidateTriggerID(triggerID string) error {
	if triggerID == "" {
		return services.ErrMissingTriggerID
	}
	if strings.ContainsAny(triggerID, "/\\\x00") || strings.Contains(triggerID, "..") {
		return services.NewDomainError(services.ErrorTypeValidation,
			fmt.Sprintf("trigger ID %q contains path characters", triggerID), nil)
	}
	return nil
}
