package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the BFF.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>wordgrid-web — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the proxy surface. Every route relays
// the upstream status and JSON body unchanged unless noted.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "wordgrid-web", "version": "v0.1.0" },
  "paths": {
    "/api/proxy/signin": {
      "post": { "summary": "Forward sign-in to the game backend", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"},"password":{"type":"string"}}}}}}, "responses": { "200": { "description": "backend sign-in payload (token + user)" } } }
    },
    "/api/proxy/signout": {
      "post": { "summary": "Best-effort server-side sign-out (token blacklist)", "responses": { "200": { "description": "always signed out" } } }
    },
    "/api/proxy/profile": { "get": { "summary": "Relay user profile", "responses": { "200": { "description": "backend profile" } } } },
    "/api/proxy/missions": { "get": { "summary": "Relay user missions", "responses": { "200": { "description": "backend missions" } } } },
    "/api/proxy/complete-mission": { "post": { "summary": "Relay mission completion", "responses": { "200": { "description": "backend result" } } } },
    "/api/proxy/history": { "get": { "summary": "Relay play history", "parameters": [ {"name":"range","in":"query","schema":{"type":"string","default":"weekly"}} ], "responses": { "200": { "description": "backend history" } } } },
    "/api/proxy/session-words": { "get": { "summary": "Relay session words", "parameters": [ {"name":"range","in":"query","schema":{"type":"string","default":"weekly"}}, {"name":"timezone","in":"query","schema":{"type":"string"}} ], "responses": { "200": { "description": "backend session words" } } } },
    "/api/proxy/currency-history": { "get": { "summary": "Relay currency history", "parameters": [ {"name":"type","in":"query","schema":{"type":"string","default":"all"}}, {"name":"limit","in":"query","schema":{"type":"string","default":"100"}} ], "responses": { "200": { "description": "backend currency history" } } } },
    "/api/proxy/statistics/daily": { "get": { "summary": "Relay daily statistics", "parameters": [ {"name":"date","in":"query","schema":{"type":"string"}} ], "responses": { "200": { "description": "backend statistics" } } } },
    "/api/proxy/theme-day": { "get": { "summary": "Relay theme-of-day data (requires credential)", "responses": { "200": { "description": "backend theme data" }, "401": { "description": "no credential supplied" } } } },
    "/api/proxy/word-definition": { "get": { "summary": "Look up a word definition (best-effort)", "parameters": [ {"name":"word","in":"query","required":true,"schema":{"type":"string"}} ], "responses": { "200": { "description": "{definition: string}" }, "400": { "description": "missing word parameter" } } } },
    "/api/proxy": { "get": { "summary": "Generic backend relay", "parameters": [ {"name":"path","in":"query","required":true,"schema":{"type":"string"}} ], "responses": { "200": { "description": "backend response" }, "400": { "description": "missing path parameter" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
