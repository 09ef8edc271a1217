package api

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"
)

const (
	docsPath     = "/docs"
	specJSONPath = "/docs/openapi"
	specYAMLPath = "/docs/openapi.yaml"
)

// RegisterDocsRoutes mounts the API documentation:
//
//	GET /                  redirect to /docs
//	GET /docs              Swagger UI
//	GET /docs/openapi      document as JSON
//	GET /docs/openapi.yaml document as written
func RegisterDocsRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, docsPath, http.StatusMovedPermanently)
	})
	mux.HandleFunc("GET "+docsPath, serveSwaggerUI)
	mux.HandleFunc("GET "+specJSONPath, serveSpecJSON)
	mux.HandleFunc("GET "+specYAMLPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(openapiYAML) //nolint:errcheck // client went away
	})
}

func serveSpecJSON(w http.ResponseWriter, _ *http.Request) {
	doc, err := GetSwagger()
	if err != nil {
		http.Error(w, "OpenAPI document unavailable", http.StatusInternalServerError)
		return
	}

	body, err := json.Marshal(doc)
	if err != nil {
		http.Error(w, "OpenAPI document unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body) //nolint:errcheck // client went away
}

func serveSwaggerUI(w http.ResponseWriter, _ *http.Request) {
	page := swaggerPage{Title: "API", SpecURL: specJSONPath}
	if doc, err := GetSwagger(); err == nil && doc.Info != nil {
		page.Title = doc.Info.Title
		page.Version = doc.Info.Version
	}

	var buf bytes.Buffer
	if err := swaggerUITemplate.Execute(&buf, page); err != nil {
		http.Error(w, "failed to render docs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w) //nolint:errcheck // client went away
}

type swaggerPage struct {
	Title   string
	Version string
	SpecURL string
}

var swaggerUITemplate = template.Must(template.New("swagger-ui").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}{{with .Version}} {{.}}{{end}} - Swagger UI</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
  <style>body { margin: 0; }</style>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => {
      SwaggerUIBundle({
        url: {{.SpecURL}},
        dom_id: '#swagger-ui',
        deepLinking: true,
        presets: [SwaggerUIBundle.presets.apis],
      });
    };
  </script>
</body>
</html>`))
