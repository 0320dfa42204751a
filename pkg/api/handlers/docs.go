package handlers

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed openapi.json
var openapiSpec []byte

const docsPage = `<!DOCTYPE html>
<html>
<head>
  <title>SnapJobs API Docs</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>
  SwaggerUIBundle({
    url: "/api/v1/openapi",
    dom_id: "#swagger-ui"
  });
</script>
</body>
</html>`

// DocsHandler serves the matching API reference for the docs portal
type DocsHandler struct{}

// NewDocsHandler creates a new docs handler
func NewDocsHandler() *DocsHandler {
	return &DocsHandler{}
}

// OpenAPI godoc
// @Summary Matching API OpenAPI document
// @Tags docs
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/openapi [get]
func (h *DocsHandler) OpenAPI(c echo.Context) error {
	c.Response().Header().Set("Access-Control-Allow-Origin", "*")
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, openapiSpec)
}

// Docs serves the interactive API reference page
func (h *DocsHandler) Docs(c echo.Context) error {
	return c.HTML(http.StatusOK, docsPage)
}
