package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mukuru1/UbuzimaHC-2/internal/models"
)

func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status: "ok",
	})
}
