package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Dashboard serves the read-only widget aggregate consumed by the
// presentation layer.
func Dashboard(c *gin.Context) {
	dash, err := Store.Dashboard()
	if err != nil {
		slog.Error("dashboard load failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}
	c.JSON(http.StatusOK, dash)
}
