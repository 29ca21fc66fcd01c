package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HealthResponse reports server liveness.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health godoc
// @Summary Check the health of the server
// @Description Returns a simple "ok" status
// @Tags health
// @Accept json
// @Produce json
// @Tags exclude
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
	})
}
