package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"makeyou-digital/backend/models"
	"makeyou-digital/backend/utils"
)

const suggestSystemPrompt = `SYSTEM:
You are the planning engine of the MakeYou Digital "AI Todo Assistant". Turn the user's request into
structured, actionable todos for the single project identified by PROJECT_ID.

RULES:
1. Attach every suggestion, todo and subtask to the given PROJECT_ID only. Never mix projects.
2. Treat requested features (payments, donations, admin panel, gallery, login, blog, e-commerce,
   SEO, marketing) as modules and offer them as optional add-on suggestions.
3. If the request is unclear, ask at most 2 short follow-up questions, then still suggest.
4. Every suggestion has: id, title, description, price (INR), estimate_minutes, priority (P1-P4),
   tags[], subtasks[] (each with title and estimate_minutes).
5. Price for the Indian market only, in rupees.
6. Infer the project type from words like website, NGO, donation, campaign, portfolio, business and
   adjust modules and pricing.
7. Reply with JSON only, no prose and no markdown, using this schema:

{
  "project_id": "<PROJECT_ID as received, or 'default'>",
  "context": "<short summary>",
  "suggestions": [
    {
      "id": "s1",
      "title": "string",
      "description": "string",
      "price": number,
      "estimate_minutes": number,
      "priority": "P1" | "P2" | "P3" | "P4",
      "tags": ["string"],
      "subtasks": [{"title": "string", "estimate_minutes": number}],
      "confidence": number,
      "followup_questions": ["string"]
    }
  ]
}

When the user adds to an existing plan, suggest only the new modules. When they ask for a complete
plan, return the full roadmap. Mention dependencies between modules in the description. Keep the
tone professional and concise.`

const (
	defaultProjectID   = "default"
	fallbackContext    = "Error generating suggestions"
	errAINotConfigured = "AI suggestions are not configured"
)

type SuggestDeps struct {
	Generator utils.TextGenerator // nil when no API key is configured
	Timeout   time.Duration
	Logger    *zap.Logger
	Now       func() time.Time
}

// SuggestProject turns a project description into a todo list. Any failure
// past input validation is answered with the fallback suggestion and status 200.
func SuggestProject(deps SuggestDeps) gin.HandlerFunc {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Timeout <= 0 {
		deps.Timeout = 30 * time.Second
	}
	return func(c *gin.Context) {
		var req models.SuggestionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			deps.Logger.Warn("ai_suggestion_failed", zap.Error(err))
			c.JSON(http.StatusOK, fallbackSuggestions(err, deps.Now()))
			return
		}
		if req.Empty() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide context or project details"})
			return
		}

		resp, err := deps.suggest(c.Request.Context(), req)
		if err != nil {
			deps.Logger.Warn("ai_suggestion_failed", zap.Error(err), zap.String("project_id", req.ProjectID))
			c.JSON(http.StatusOK, fallbackSuggestions(err, deps.Now()))
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func (d SuggestDeps) suggest(ctx context.Context, req models.SuggestionRequest) (models.SuggestionResponse, error) {
	if d.Generator == nil {
		return models.SuggestionResponse{}, errors.New(errAINotConfigured)
	}
	ctx, cancel := context.WithTimeout(ctx, d.Timeout)
	defer cancel()

	text, err := d.Generator.GenerateText(ctx, suggestSystemPrompt, buildUserPrompt(req))
	if err != nil {
		return models.SuggestionResponse{}, fmt.Errorf("generate: %w", err)
	}
	return parseSuggestions(text, req, d.Now())
}

func buildUserPrompt(req models.SuggestionRequest) string {
	projectID := strings.TrimSpace(req.ProjectID)
	if projectID == "" {
		projectID = defaultProjectID
	}
	request := firstNonEmpty(req.ProjectDescription, req.Context, "Help me plan a project")

	var b strings.Builder
	fmt.Fprintf(&b, "PROJECT_ID: %s\n", projectID)
	fmt.Fprintf(&b, "USER REQUEST: %s\n\n", request)
	if req.Budget != "" {
		fmt.Fprintf(&b, "Budget: ₹%s\n", req.Budget)
	}
	if req.Timeline != "" {
		fmt.Fprintf(&b, "Timeline: %s days\n", req.Timeline)
	}
	if req.Type != "" {
		fmt.Fprintf(&b, "Project Type: %s\n", req.Type)
	}
	if req.Pages != "" {
		fmt.Fprintf(&b, "Number of Pages: %s\n", req.Pages)
	}
	if req.Language == "hi" {
		b.WriteString("\n\nIMPORTANT: Respond in Hindi language. All suggestions, titles, and descriptions must be in Hindi.")
	} else {
		b.WriteString("\n\nIMPORTANT: Respond in English language.")
	}
	b.WriteString("\nProvide suggestions as JSON only (no markdown, no extra text).")
	return b.String()
}

// parseSuggestions decodes the model reply, which must be a JSON object. An
// object without a suggestions array is an empty plan, not an error.
func parseSuggestions(text string, req models.SuggestionRequest, now time.Time) (models.SuggestionResponse, error) {
	body := utils.StripFences(text)
	if !strings.HasPrefix(body, "{") {
		return models.SuggestionResponse{}, errors.New("model reply is not a JSON object")
	}
	var out models.SuggestionResponse
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		return models.SuggestionResponse{}, fmt.Errorf("parse model reply: %w", err)
	}
	if out.Suggestions == nil {
		out.Suggestions = []models.Suggestion{}
	}
	if out.ProjectID == "" {
		out.ProjectID = firstNonEmpty(req.ProjectID, defaultProjectID)
	}
	for i := range out.Suggestions {
		s := &out.Suggestions[i]
		if s.ID == "" {
			s.ID = fmt.Sprintf("s%d", i+1)
		}
		if s.Tags == nil {
			s.Tags = []string{}
		}
		if s.Subtasks == nil {
			s.Subtasks = []models.Subtask{}
		}
	}
	if out.Meta == nil {
		out.Meta = &models.SuggestionMeta{}
	}
	if out.Meta.GeneratedAt.IsZero() {
		out.Meta.GeneratedAt = now.UTC()
	}
	out.Error = ""
	return out, nil
}

func fallbackSuggestions(cause error, now time.Time) models.SuggestionResponse {
	return models.SuggestionResponse{
		Context: fallbackContext,
		Suggestions: []models.Suggestion{{
			ID:              "s1",
			Title:           "Standard Business Website",
			Description:     "A professional website with essential pages and features",
			Price:           15000,
			Currency:        "INR",
			EstimateMinutes: 720,
			Priority:        "P1",
			Tags:            []string{"website", "business", "cms"},
			Subtasks: []models.Subtask{
				{Title: "Design homepage", EstimateMinutes: 120},
				{Title: "Create content", EstimateMinutes: 180},
				{Title: "Development", EstimateMinutes: 300},
				{Title: "Testing & launch", EstimateMinutes: 120},
			},
			Confidence: 0.85,
			Rationale:  "A balanced solution for most business needs",
		}},
		Meta:  &models.SuggestionMeta{GeneratedAt: now.UTC()},
		Error: cause.Error(),
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
