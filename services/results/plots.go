package results

// knownPlotTypes is the closed set of plot kinds the pipeline renders per
// trigger. Order is fixed and only significant for display. Matching is
// case-sensitive: the tokens appear verbatim in the plot filenames.
var knownPlotTypes = []string{
	"Scaled_Magnitude_Comparison",
	"Aftershock_extent_depth_map",
	"catalog_RT",
	"catalog_templates",
	"confidence_ellipsoid",
	"confidence_ellipsoid_vertical",
	"focal_sphere",
	"Geometry_with_time",
}

// IsKnownPlotType reports whether token names a plot kind the pipeline
// renders.
func IsKnownPlotType(token string) bool {
	for _, t := range knownPlotTypes {
		if t == token {
			return true
		}
	}
	return false
}

// AllPlotTypes returns the known plot kinds in display order.
func AllPlotTypes() []string {
	out := make([]string, len(knownPlotTypes))
	copy(out, knownPlotTypes)
	return out
}
