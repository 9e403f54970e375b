package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Features reports which optional collaborators are wired.
type Features struct {
	Sheets   bool `json:"sheets"`
	SMTP     bool `json:"smtp"`
	AI       bool `json:"ai"`
	Database bool `json:"database"`
	Admin    bool `json:"admin"`
}

func Health(f Features) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "features": f})
	}
}
