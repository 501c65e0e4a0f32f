// Package web embeds the single-page frontend and serves it through the
// application router. The page is plain HTML/JS talking to the JSON API; it
// keeps its token in localStorage and discards it on logout.
package web

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed index.html app.js
var assets embed.FS

// RegisterRoutes mounts the frontend at the router root.
func RegisterRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		serveAsset(c, "index.html", "text/html; charset=utf-8")
	})
	router.GET("/app.js", func(c *gin.Context) {
		serveAsset(c, "app.js", "application/javascript; charset=utf-8")
	})
}

func serveAsset(c *gin.Context, name, contentType string) {
	data, err := assets.ReadFile(name)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	c.Data(http.StatusOK, contentType, data)
}
