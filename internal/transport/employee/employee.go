package employee

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainemployee "github.com/alanyang/employee-mcp/internal/domain/employee"
	employeesvc "github.com/alanyang/employee-mcp/internal/service/employee"
)

func Register(rg *gin.RouterGroup, svc *employeesvc.Service) {
	rg.GET("", listEmployees(svc))
	rg.GET("/search", searchEmployees(svc))
	rg.GET("/:id", getEmployee(svc))
}

type listResp struct {
	Count     int                   `json:"count"`
	Employees domainemployee.Roster `json:"employees"`
}

func listEmployees(svc *employeesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		roster, ok := load(c, svc)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, listResp{Count: len(roster), Employees: roster})
	}
}

func searchEmployees(svc *employeesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		roster, ok := load(c, svc)
		if !ok {
			return
		}
		matches := roster.SearchByName(c.Query("name"))
		c.JSON(http.StatusOK, listResp{Count: len(matches), Employees: matches})
	}
}

func getEmployee(svc *employeesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		roster, ok := load(c, svc)
		if !ok {
			return
		}
		e, found := roster.FindByID(c.Param("id"))
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
			return
		}
		c.JSON(http.StatusOK, e)
	}
}

// load writes a 503 and reports false when the roster file is unavailable.
func load(c *gin.Context, svc *employeesvc.Service) (domainemployee.Roster, bool) {
	res := svc.Load(c.Request.Context())
	if res.Status != employeesvc.StatusOK {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": res.Err.Error()})
		return nil, false
	}
	return res.Roster, true
}
