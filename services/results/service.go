package results

import (
	"fmt"

	"github.com/rcet-nz/rteqc-api/services"
	"github.com/rcet-nz/rteqc-api/services/tabular"
	"go.uber.org/zap"
)

// timestampColumn is the zero-based index of the column parsed as a
// datetime in both the catalog and the source summary. The pipeline writes
// the event time second in both files.
const timestampColumn = 1

// Service exposes the read-only views over one base directory of pipeline
// output. All methods derive their result from current filesystem state.
type Service struct {
	layout  Layout
	scanner *Scanner
	logger  *zap.Logger
}

// NewService creates a Service over layout using scanner for discovery.
func NewService(layout Layout, scanner *Scanner, logger *zap.Logger) *Service {
	return &Service{
		layout:  layout,
		scanner: scanner,
		logger:  logger,
	}
}

// Triggers returns the IDs of all runs with a catalog on disk.
func (s *Service) Triggers() ([]string, error) {
	return s.scanner.ListTriggers()
}

// Catalog loads the trigger's detected-event catalog.
func (s *Service) Catalog(triggerID string) (*tabular.Table, error) {
	if err := ValidateTriggerID(triggerID); err != nil {
		return nil, err
	}

	path := s.layout.CatalogPath(triggerID)
	s.logger.Info("reading catalog", zap.String("trigger_id", triggerID), zap.String("path", path))

	table, err := tabular.Load(path, timestampColumn)
	if err != nil {
		if services.IsNotFoundError(err) {
			return nil, services.WrapError(services.ErrorTypeNotFound,
				fmt.Sprintf("no catalog for trigger %s", triggerID), err)
		}
		return nil, err
	}

	s.logger.Info("read catalog", zap.String("trigger_id", triggerID), zap.Int("rows", table.NumRows()))
	return table, nil
}

// Sources loads the trigger's source-parameter summary.
func (s *Service) Sources(triggerID string) (*tabular.Table, error) {
	if err := ValidateTriggerID(triggerID); err != nil {
		return nil, err
	}

	path := s.layout.SourcesPath(triggerID)
	s.logger.Info("reading source summary", zap.String("trigger_id", triggerID), zap.String("path", path))

	table, err := tabular.Load(path, timestampColumn)
	if err != nil {
		if services.IsNotFoundError(err) {
			return nil, services.WrapError(services.ErrorTypeNotFound,
				fmt.Sprintf("no source summary for trigger %s", triggerID), err)
		}
		return nil, err
	}

	return table, nil
}

// PlotFile resolves the path of the latest plot of the given kind and
// verifies it exists. Unknown kinds and missing files both carry the full
// list of valid kinds so callers can discover what is available.
func (s *Service) PlotFile(triggerID, plotType string) (string, error) {
	if err := ValidateTriggerID(triggerID); err != nil {
		return "", err
	}
	if !IsKnownPlotType(plotType) {
		return "", services.NewDomainError(services.ErrorTypeNotFound,
			fmt.Sprintf("%s is not a known plot type", plotType), nil).
			WithDetail("known_plot_types", AllPlotTypes())
	}

	path := s.layout.PlotPath(triggerID, plotType)
	if !fileExists(path) {
		s.logger.Warn("plot file missing",
			zap.String("trigger_id", triggerID),
			zap.String("plot_type", plotType),
			zap.String("path", path))
		return "", services.NewDomainError(services.ErrorTypeNotFound,
			fmt.Sprintf("no %s plot for trigger %s", plotType, triggerID), nil).
			WithDetail("known_plot_types", AllPlotTypes())
	}

	return path, nil
}
