package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"makeyou-digital/backend/database"
	"makeyou-digital/backend/models"
)

type SubmissionDeps struct {
	Store  database.ProjectStore
	Logger *zap.Logger
	Now    func() time.Time
}

func (d SubmissionDeps) withDefaults() SubmissionDeps {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// SubmitProject stores the todo list a visitor built with the AI planner.
func SubmitProject(deps SubmissionDeps) gin.HandlerFunc {
	d := deps.withDefaults()
	return func(c *gin.Context) {
		var req models.SubmitProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
		sub := models.ProjectSubmission{
			ProjectID:   fmt.Sprintf("proj-%d", d.Now().UnixMilli()),
			Tasks:       req.Tasks,
			Messages:    req.Messages,
			Language:    req.Language,
			SubmittedAt: req.SubmittedAt.UTC(),
			Status:      models.StatusPending,
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := d.Store.Create(ctx, &sub)
		if errors.Is(err, database.ErrDuplicate) {
			// Two submissions in the same millisecond.
			sub.ProjectID = fmt.Sprintf("proj-%d-%s", d.Now().UnixMilli(), uuid.NewString()[:8])
			err = d.Store.Create(ctx, &sub)
		}
		if err != nil {
			d.Logger.Error("submit_project_failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "projectId": sub.ProjectID})
	}
}

// ListSubmissions returns every submission, most recent first.
func ListSubmissions(deps SubmissionDeps) gin.HandlerFunc {
	d := deps.withDefaults()
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		subs, err := d.Store.List(ctx)
		if err != nil {
			d.Logger.Error("list_submissions_failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"submissions": subs})
	}
}

func UpdateSubmissionStatus(deps SubmissionDeps) gin.HandlerFunc {
	d := deps.withDefaults()
	return func(c *gin.Context) {
		var req models.SubmissionStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		projectID := c.Param("projectId")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := d.Store.UpdateStatus(ctx, projectID, req.Status)
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "submission not found"})
			return
		}
		if err != nil {
			d.Logger.Error("update_submission_failed", zap.Error(err), zap.String("project_id", projectID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "projectId": projectID, "status": req.Status})
	}
}

func ExportSubmissions(deps SubmissionDeps) gin.HandlerFunc {
	d := deps.withDefaults()
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		subs, err := d.Store.List(ctx)
		if err != nil {
			d.Logger.Error("export_submissions_failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		rows := make([][]any, 0, len(subs))
		for _, s := range subs {
			done := 0
			for _, t := range s.Tasks {
				if t.Completed {
					done++
				}
			}
			rows = append(rows, []any{
				s.ProjectID, s.SubmittedAt.Format(time.RFC3339), s.Language, s.Status,
				len(s.Tasks), done, len(s.Messages),
			})
		}
		header := []any{"Project ID", "Submitted At", "Language", "Status", "Tasks", "Completed Tasks", "Messages"}
		buf, err := buildWorkbook("Submissions", header, rows)
		if err != nil {
			d.Logger.Error("export_submissions_failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
			return
		}
		sendWorkbook(c, "submissions.xlsx", buf)
	}
}
