package handlers

import (
	"html/template"
	"net/http"

	"github.com/rcet-nz/rteqc-api/services/results"
	"go.uber.org/zap"
)

// exampleTriggerID is the trigger used in the landing page sample links.
const exampleTriggerID = "2014p051675"

var homeTmpl = template.Must(template.New("home").Parse(`<html>
    <head>
        <title>RCET RTEQcorrscan results</title>
    </head>
    <body>
        <h1>So you want some aftershocks eh!?</h1>
        <p>Herein you will be able to get the most recent results for a specific RT-EQcorrscan run.</p>
        <h2>Example API syntax</h2>
        <p>To get the list of current triggers: <a href="{{.TriggersURL}}">{{.TriggersURL}}</a></p>

        <h3>To download output catalog</h3>
        <p>Requesting catalog for trigger {{.ExampleTriggerID}}: <a href="{{.ExampleCatalogURL}}" target=_blank>{{.ExampleCatalogURL}}</a></p>
        <p>To load the results into a pandas dataframe:</p>
        <pre class="brush: python">
        import pandas as pd

        df = pd.read_json('{{.ExampleCatalogURL}}', orient='table')
        </pre>
    </body>
</html>
`))

// HomeHandler handles the landing page
type HomeHandler struct {
	publicURL string
	logger    *zap.Logger
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(publicURL string, logger *zap.Logger) *HomeHandler {
	return &HomeHandler{
		publicURL: publicURL,
		logger:    logger,
	}
}

// HandleHome handles GET /
func (h *HomeHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	base := baseURL(h.publicURL, r)
	data := struct {
		TriggersURL       string
		ExampleTriggerID  string
		ExampleCatalogURL string
	}{
		TriggersURL:       results.TriggersURL(base),
		ExampleTriggerID:  exampleTriggerID,
		ExampleCatalogURL: results.CatalogURL(base, exampleTriggerID),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := homeTmpl.Execute(w, data); err != nil {
		h.logger.Error("failed to render landing page", zap.Error(err))
	}
}
