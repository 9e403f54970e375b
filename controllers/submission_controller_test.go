package controllers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"makeyou-digital/backend/database"
	"makeyou-digital/backend/models"
)

const submitBody = `{
  "tasks":[{"id":"t1","text":"Homepage","completed":true,"notes":""},{"id":"t2","text":"Gallery","completed":false,"notes":"later"}],
  "messages":[{"id":"m1","type":"user","content":"Photo studio site","timestamp":"2026-10-19T10:00:00Z"},{"id":"m2","type":"ai","content":"Here is a plan","timestamp":"2026-10-19T10:00:05Z"}],
  "language":"en",
  "submittedAt":"2026-10-19T10:01:00Z"
}`

func newSubmissionRouter(store database.ProjectStore, now time.Time) *gin.Engine {
	deps := SubmissionDeps{Store: store, Now: func() time.Time { return now }}
	r := gin.New()
	r.POST("/api/admin/submit-project", SubmitProject(deps))
	r.GET("/api/admin/submit-project", ListSubmissions(deps))
	r.PATCH("/api/admin/submissions/:projectId/status", UpdateSubmissionStatus(deps))
	r.GET("/api/admin/submissions/export", ExportSubmissions(deps))
	return r
}

func TestSubmitProjectStoresPending(t *testing.T) {
	store := database.NewMemoryProjectStore()
	now := time.UnixMilli(1760868060000)
	r := newSubmissionRouter(store, now)

	rec := performJSON(r, http.MethodPost, "/api/admin/submit-project", submitBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	require.Equal(t, true, body["success"])
	require.Equal(t, "proj-1760868060000", body["projectId"])

	subs, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 1)
	require.Equal(t, models.StatusPending, subs[0].Status)
	require.Len(t, subs[0].Tasks, 2)
	require.Equal(t, "ai", subs[0].Messages[1].Type)
}

func TestSubmitProjectSameMillisecondGetsDistinctID(t *testing.T) {
	store := database.NewMemoryProjectStore()
	r := newSubmissionRouter(store, time.UnixMilli(42))

	first := decode(t, performJSON(r, http.MethodPost, "/api/admin/submit-project", submitBody))
	second := decode(t, performJSON(r, http.MethodPost, "/api/admin/submit-project", submitBody))
	require.NotEqual(t, first["projectId"], second["projectId"])

	subs, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 2)
}

func TestSubmitProjectRejectsIncomplete(t *testing.T) {
	cases := map[string]string{
		"no tasks":      `{"messages":[],"language":"en","submittedAt":"2026-10-19T10:01:00Z"}`,
		"bad language":  `{"tasks":[],"messages":[],"language":"fr","submittedAt":"2026-10-19T10:01:00Z"}`,
		"no timestamp":  `{"tasks":[],"messages":[],"language":"en"}`,
		"bad chat type": `{"tasks":[],"messages":[{"id":"m","type":"bot","content":"x"}],"language":"en","submittedAt":"2026-10-19T10:01:00Z"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := performJSON(newSubmissionRouter(database.NewMemoryProjectStore(), time.Now()), http.MethodPost, "/api/admin/submit-project", body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, "Missing required fields", decode(t, rec)["error"])
		})
	}
}

type failingProjectStore struct{ database.ProjectStore }

func (failingProjectStore) Create(context.Context, *models.ProjectSubmission) error {
	return errors.New("connection refused")
}

func TestSubmitProjectStoreFailure(t *testing.T) {
	rec := performJSON(newSubmissionRouter(failingProjectStore{}, time.Now()), http.MethodPost, "/api/admin/submit-project", submitBody)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUpdateSubmissionStatus(t *testing.T) {
	store := database.NewMemoryProjectStore()
	r := newSubmissionRouter(store, time.UnixMilli(7))
	id := decode(t, performJSON(r, http.MethodPost, "/api/admin/submit-project", submitBody))["projectId"].(string)

	rec := performJSON(r, http.MethodPatch, "/api/admin/submissions/"+id+"/status", `{"status":"in-progress"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	list := decode(t, performJSON(r, http.MethodGet, "/api/admin/submit-project", ""))
	subs := list["submissions"].([]any)
	require.Equal(t, "in-progress", subs[0].(map[string]any)["status"])

	rec = performJSON(r, http.MethodPatch, "/api/admin/submissions/"+id+"/status", `{"status":"archived"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = performJSON(r, http.MethodPatch, "/api/admin/submissions/proj-missing/status", `{"status":"reviewed"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportSubmissions(t *testing.T) {
	r := newSubmissionRouter(database.NewMemoryProjectStore(), time.UnixMilli(99))
	require.Equal(t, http.StatusOK, performJSON(r, http.MethodPost, "/api/admin/submit-project", submitBody).Code)

	rec := performJSON(r, http.MethodGet, "/api/admin/submissions/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "submissions.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Submissions")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Project ID", rows[0][0])
	require.Equal(t, []string{"proj-99", "2026-10-19T10:01:00Z", "en", "pending", "2", "1", "2"}, rows[1])
}
