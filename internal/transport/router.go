package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	employeesvc "github.com/alanyang/employee-mcp/internal/service/employee"
	employeehandler "github.com/alanyang/employee-mcp/internal/transport/employee"
)

// NewRouter builds the HTTP surface: the MCP Streamable HTTP endpoint at /mcp,
// a read-only JSON API, health and Prometheus metrics.
func NewRouter(
	employeeSvc *employeesvc.Service,
	mcpHandler http.Handler,
	gatherer prometheus.Gatherer,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestLogger())

	r.Any("/mcp", gin.WrapH(mcpHandler))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	employeehandler.Register(api.Group("/employees"), employeeSvc)

	return r
}
