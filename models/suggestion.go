package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// SuggestionRequest is the body of POST /api/ai/suggest.
type SuggestionRequest struct {
	ProjectDescription string     `json:"projectDescription"`
	Context            string     `json:"context"`
	Language           string     `json:"language"`
	Budget             FlexString `json:"budget"`
	Timeline           FlexString `json:"timeline"`
	Type               string     `json:"type"`
	Pages              FlexString `json:"pages"`
	ProjectID          string     `json:"project_id"`
}

// Empty reports whether the request carries nothing to plan from.
func (r SuggestionRequest) Empty() bool {
	return strings.TrimSpace(r.ProjectDescription) == "" &&
		strings.TrimSpace(r.Context) == "" &&
		r.Budget.zero() &&
		strings.TrimSpace(r.Type) == ""
}

type Subtask struct {
	Title           string  `json:"title"`
	EstimateMinutes FlexInt `json:"estimate_minutes"`
}

type Suggestion struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Price             FlexInt   `json:"price"`
	Currency          string    `json:"currency,omitempty"`
	EstimateMinutes   FlexInt   `json:"estimate_minutes"`
	Priority          string    `json:"priority"`
	Tags              []string  `json:"tags"`
	Subtasks          []Subtask `json:"subtasks"`
	Confidence        float64   `json:"confidence,omitempty"`
	Rationale         string    `json:"rationale,omitempty"`
	FollowupQuestions []string  `json:"followup_questions,omitempty"`
}

type SuggestionMeta struct {
	GeneratedAt time.Time `json:"generated_at"`
}

// SuggestionResponse is the plan returned to the client. Top-level keys the
// model adds beyond the known ones are carried in Extra and written back out.
type SuggestionResponse struct {
	ProjectID   string          `json:"project_id,omitempty"`
	Context     string          `json:"context"`
	Suggestions []Suggestion    `json:"suggestions"`
	Meta        *SuggestionMeta `json:"meta,omitempty"`
	Error       string          `json:"error,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var suggestionResponseKeys = map[string]bool{
	"project_id":  true,
	"context":     true,
	"suggestions": true,
	"meta":        true,
	"error":       true,
}

func (r *SuggestionResponse) UnmarshalJSON(b []byte) error {
	type plain SuggestionResponse
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	for k, v := range raw {
		if suggestionResponseKeys[k] {
			continue
		}
		if p.Extra == nil {
			p.Extra = map[string]json.RawMessage{}
		}
		p.Extra[k] = v
	}
	*r = SuggestionResponse(p)
	return nil
}

func (r SuggestionResponse) MarshalJSON() ([]byte, error) {
	type plain SuggestionResponse
	b, err := json.Marshal(plain(r))
	if err != nil || len(r.Extra) == 0 {
		return b, err
	}
	merged := map[string]json.RawMessage{}
	if err := json.Unmarshal(b, &merged); err != nil {
		return nil, err
	}
	for k, v := range r.Extra {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// FlexInt accepts JSON numbers (rounded) and numeric strings.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %s: %w", b, err)
	}
	*f = FlexInt(math.Round(v))
	return nil
}

// FlexString accepts a JSON string or number and keeps its text form.
type FlexString string

// zero reports a blank value or one that reads as the number 0.
func (f FlexString) zero() bool {
	s := strings.TrimSpace(string(f))
	if s == "" {
		return true
	}
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && v == 0
}

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", b)
	}
	*f = FlexString(n.String())
	return nil
}
