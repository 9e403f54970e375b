package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"makeyou-digital/backend/database"
	"makeyou-digital/backend/models"
)

type LeadDeps struct {
	Store  database.LeadStore
	Logger *zap.Logger
}

// CreateLead stores a project inquiry. Unlike the contact form, the database
// write is the whole point, so its failure fails the request.
func CreateLead(d LeadDeps) gin.HandlerFunc {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		var req models.LeadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and a valid email are required"})
			return
		}
		lead := models.Lead{
			Name:        req.Name,
			Email:       req.Email,
			Phone:       req.Phone,
			ProjectType: req.ProjectType,
			Budget:      req.Budget,
			Description: req.Description,
			Timeline:    req.Timeline,
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := d.Store.Create(ctx, &lead); err != nil {
			d.Logger.Error("create_lead_failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save submission"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": lead})
	}
}

func ListLeads(d LeadDeps) gin.HandlerFunc {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		leads, err := d.Store.List(ctx)
		if err != nil {
			d.Logger.Error("list_leads_failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "count": len(leads), "data": leads})
	}
}

func ExportLeads(d LeadDeps) gin.HandlerFunc {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		leads, err := d.Store.List(ctx)
		if err != nil {
			d.Logger.Error("export_leads_failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
			return
		}
		rows := make([][]any, 0, len(leads))
		for _, l := range leads {
			rows = append(rows, []any{
				l.CreatedAt.Format(time.RFC3339), l.Name, l.Email, l.Phone,
				l.ProjectType, l.Budget, l.Timeline, l.Description,
			})
		}
		header := []any{"Created At", "Name", "Email", "Phone", "Project Type", "Budget", "Timeline", "Description"}
		buf, err := buildWorkbook("Leads", header, rows)
		if err != nil {
			d.Logger.Error("export_leads_failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
			return
		}
		sendWorkbook(c, "leads.xlsx", buf)
	}
}
