package router

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// Static serves files below dir for GET and HEAD requests, with index.html
// standing in for directories. Requests it cannot serve continue down the
// chain untouched.
func Static(dir string) gin.HandlerFunc {
	serve := static.Serve("/", static.LocalFile(dir, false))

	return func(c *gin.Context) {
		method := c.Request.Method
		if method != http.MethodGet && method != http.MethodHead {
			return
		}
		if strings.Contains(c.Request.URL.Path, "..") {
			return
		}
		serve(c)
	}
}
