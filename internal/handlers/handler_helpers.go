package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetOwnerID extracts the owner ID from the request
func GetOwnerID(c *gin.Context) (uuid.UUID, error) {
	// First try to get from header
	ownerIDStr := c.GetHeader("X-Owner-ID")
	if ownerIDStr == "" {
		// Try to get from context (set by auth middleware)
		if val, exists := c.Get("ownerID"); exists {
			if id, ok := val.(uuid.UUID); ok {
				return id, nil
			}
		}
		return uuid.Nil, fmt.Errorf("owner ID not found")
	}

	return uuid.Parse(ownerIDStr)
}
