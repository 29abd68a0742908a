package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get handles version requests
// @Summary      Version banner
// @Tags         version
// @Produce      json
// @Success      200 {object} map[string]string "Service identity"
// @Router       / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Crack Survey API",
			"version":     "1.0.0",
			"description": "API for crack survey imports and design map management",
			"status":      "running",
		})
	}
}
