package controller

import (
	"net/http"

	"user-microservice/internal/api/service"

	"github.com/gin-gonic/gin"
)

// StatusController reports service health.
type StatusController struct {
	statusService service.StatusService
}

// NewStatusController creates a new StatusController.
func NewStatusController(statusService service.StatusService) *StatusController {
	return &StatusController{
		statusService: statusService,
	}
}

// Status handles the liveness endpoint. It always answers 200; a failed
// database probe shows up in the body, not in the status code.
func (sc *StatusController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, sc.statusService.Check(c.Request.Context()))
}
