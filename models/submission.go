package models

import "time"

const (
	StatusPending    = "pending"
	StatusReviewed   = "reviewed"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

var SubmissionStatuses = []string{StatusPending, StatusReviewed, StatusInProgress, StatusCompleted}

type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Notes     string `json:"notes"`
}

type ChatMessage struct {
	ID        string    `json:"id"`
	Type      string    `json:"type" binding:"oneof=user ai"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ProjectSubmission is a todo list the visitor sent from the AI planner.
type ProjectSubmission struct {
	ProjectID   string        `json:"projectId"`
	Tasks       []Task        `json:"tasks"`
	Messages    []ChatMessage `json:"messages"`
	Language    string        `json:"language"`
	SubmittedAt time.Time     `json:"submittedAt"`
	Status      string        `json:"status"`
}

type SubmitProjectRequest struct {
	Tasks       []Task        `json:"tasks" binding:"required,dive"`
	Messages    []ChatMessage `json:"messages" binding:"required,dive"`
	Language    string        `json:"language" binding:"required,oneof=en hi"`
	SubmittedAt *time.Time    `json:"submittedAt" binding:"required"`
}

type SubmissionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending reviewed in-progress completed"`
}
