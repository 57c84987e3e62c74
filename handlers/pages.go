package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterPageRoutes serves the marketing and profile page shells. The pages
// themselves are static; all dynamic data is loaded by the browser through
// the proxy routes, so these handlers render only a minimal shell.
func RegisterPageRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) { renderShell(c, "wordgrid", "home") })
	r.GET("/profile", func(c *gin.Context) { renderShell(c, "Your profile", "profile") })
	r.GET("/stats", func(c *gin.Context) { renderShell(c, "Statistics", "stats") })
	r.GET("/missions", func(c *gin.Context) { renderShell(c, "Missions", "missions") })
	r.GET("/signin", func(c *gin.Context) { renderShell(c, "Sign in", "signin") })

	// static assets (scripts, styles, images) when bundled alongside the binary
	r.Static("/assets", "./web/assets")
}

func renderShell(c *gin.Context, title, page string) {
	html := fmt.Sprintf(`<!doctype html>
<html>
  <head><meta charset="utf-8"><title>%s — wordgrid</title><link rel="stylesheet" href="/assets/site.css"></head>
  <body data-page="%s"><div id="app"></div><script src="/assets/site.js"></script></body>
</html>`, title, page)
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, html)
}
