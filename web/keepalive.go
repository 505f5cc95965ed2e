package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router builds the keep-alive HTTP handler. The single route exists so an
// external uptime monitor can keep the process resident.
func Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Bot is running!")
	})
	return r
}

// Run serves the keep-alive endpoint and blocks until the server fails.
func Run(addr string) error {
	return Router().Run(addr)
}
