package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}
	corsHeaders = []string{"Content-Type"}
)

// CORS lets any origin call the API. Every response carries
// Access-Control-Allow-Origin: * and every OPTIONS request is answered with
// an empty 200, whether or not the client sent an Origin header.
func CORS() gin.HandlerFunc {
	negotiate := cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              corsMethods,
		AllowHeaders:              corsHeaders,
		ExposeHeaders:             []string{RequestIDHeader, "X-Data-Source"},
		MaxAge:                    12 * time.Hour,
		OptionsResponseStatusCode: http.StatusOK,
	})

	return func(c *gin.Context) {
		negotiate(c)
		if c.IsAborted() {
			return
		}

		// cors skips requests without a cross-origin Origin header
		h := c.Writer.Header()
		if h.Get("Access-Control-Allow-Origin") == "" {
			h.Set("Access-Control-Allow-Origin", "*")
		}
		if c.Request.Method == http.MethodOptions {
			h.Set("Access-Control-Allow-Methods", strings.Join(corsMethods, ", "))
			h.Set("Access-Control-Allow-Headers", strings.Join(corsHeaders, ", "))
			c.AbortWithStatus(http.StatusOK)
		}
	}
}
