package models

import "time"

// NotSpecified stands in for an omitted callback window in rows and emails.
const NotSpecified = "Not specified"

// CallbackWindows are the leading words accepted for callbackTime.
var CallbackWindows = []string{"Anytime", "Morning", "Afternoon", "Evening"}

type ContactSubmission struct {
	Name         string `json:"name" binding:"required,min=2"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	CallbackTime string `json:"callbackTime" binding:"omitempty,callback_window"`
	Message      string `json:"message" binding:"required,min=10"`
}

func (s ContactSubmission) CallbackOrDefault() string {
	if s.CallbackTime == "" {
		return NotSpecified
	}
	return s.CallbackTime
}

// LeadRequest is the database-backed project inquiry.
type LeadRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	ProjectType string `json:"projectType"`
	Budget      string `json:"budget"`
	Description string `json:"description"`
	Timeline    string `json:"timeline"`
}

type Lead struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	ProjectType string    `json:"projectType,omitempty"`
	Budget      string    `json:"budget,omitempty"`
	Description string    `json:"description,omitempty"`
	Timeline    string    `json:"timeline,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
