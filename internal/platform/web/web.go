// Package web embeds the dashboard shell: a static single page that drives
// the JSON API and renders the charts client side.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed index.html
var indexHTML []byte

//go:embed assets
var content embed.FS

var assets = func() http.FileSystem {
	sub, err := fs.Sub(content, "assets")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}()

// Register mounts the shell on the router: the page at / and its static
// assets under /assets.
func Register(r *gin.Engine) {
	r.GET("/", Index)
	r.StaticFS("/assets", assets)
}

// Index serves the dashboard page.
func Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}
