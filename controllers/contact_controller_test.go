package controllers

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"makeyou-digital/backend/models"
)

var contactNow = time.Date(2026, 10, 19, 9, 34, 5, 0, time.UTC)

func newContactRouter(sheet *fakeSheet, mailer *fakeMailer, logger *zap.Logger) *gin.Engine {
	deps := ContactDeps{
		AdminRecipient: "owner@makeyou.online",
		Location:       time.FixedZone("IST", 19800),
		Logger:         logger,
		Now:            func() time.Time { return contactNow },
	}
	if sheet != nil {
		deps.Sheet = sheet
	}
	if mailer != nil {
		deps.Mailer = mailer
	}
	r := gin.New()
	r.POST("/api/contact", ContactSubmit(deps))
	return r
}

func TestContactSubmitValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"minimal valid", `{"name":"Jo","email":"jo@x.com","message":"1234567890"}`, http.StatusOK},
		{"with callback label", `{"name":"Asha","email":"asha@example.com","callbackTime":"Morning (9am - 12pm)","message":"Need a salon website"}`, http.StatusOK},
		{"name too short", `{"name":"J","email":"jo@x.com","message":"1234567890"}`, http.StatusBadRequest},
		{"message too short", `{"name":"Jo","email":"jo@x.com","message":"123456789"}`, http.StatusBadRequest},
		{"bad email", `{"name":"Jo","email":"not-an-email","message":"1234567890"}`, http.StatusBadRequest},
		{"missing email", `{"name":"Jo","message":"1234567890"}`, http.StatusBadRequest},
		{"unknown callback window", `{"name":"Jo","email":"jo@x.com","callbackTime":"Midnight","message":"1234567890"}`, http.StatusBadRequest},
		{"wrong type", `{"name":42,"email":"jo@x.com","message":"1234567890"}`, http.StatusBadRequest},
		{"malformed json", `{"name":"Jo",`, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sheet, mailer := &fakeSheet{}, &fakeMailer{}
			rec := performJSON(newContactRouter(sheet, mailer, nil), http.MethodPost, "/api/contact", tc.body)
			require.Equal(t, tc.want, rec.Code, rec.Body.String())

			if tc.want == http.StatusOK {
				require.Equal(t, true, decode(t, rec)["success"])
				require.Equal(t, 1, sheet.calls())
				require.Equal(t, 1, mailer.calls())
				return
			}
			require.Zero(t, sheet.calls())
			require.Zero(t, mailer.calls())
		})
	}
}

func TestContactSubmitErrorBodies(t *testing.T) {
	r := newContactRouter(&fakeSheet{}, &fakeMailer{}, nil)

	rec := performJSON(r, http.MethodPost, "/api/contact", `{"name":"J","email":"jo@x.com","message":"1234567890"}`)
	require.Equal(t, "Invalid data", decode(t, rec)["error"])

	rec = performJSON(r, http.MethodPost, "/api/contact", `not json`)
	require.Equal(t, "Internal Server Error", decode(t, rec)["error"])
}

func TestContactSubmitWritesRowAndBothEmails(t *testing.T) {
	sheet, mailer := &fakeSheet{}, &fakeMailer{}
	rec := performJSON(newContactRouter(sheet, mailer, nil), http.MethodPost, "/api/contact",
		`{"name":"Jo","email":"jo@x.com","message":"1234567890"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Equal(t, []any{"19/10/2026, 3:04:05 pm", "Jo", "jo@x.com", "", "1234567890", "Not specified"}, sheet.rows[0])

	batch := mailer.batches[0]
	require.Len(t, batch, 2)
	require.Equal(t, "jo@x.com", batch[0].To)
	require.Equal(t, "Thank you for contacting MakeYou Digital", batch[0].Subject)
	require.Equal(t, "owner@makeyou.online", batch[1].To)
	require.Equal(t, "New Lead: Jo", batch[1].Subject)
	require.Contains(t, batch[1].Text, "Preferred Callback Time: Not specified")
}

func TestContactSubmitSheetFailureStillMails(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	sheet := &fakeSheet{err: errors.New("quota exceeded")}
	mailer := &fakeMailer{}

	rec := performJSON(newContactRouter(sheet, mailer, zap.New(core)), http.MethodPost, "/api/contact",
		`{"name":"Jo","email":"jo@x.com","message":"1234567890"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, mailer.calls())
	require.Len(t, mailer.batches[0], 2)
	require.Equal(t, 1, logs.FilterMessage("contact_sheet_append_failed").Len())
}

func TestContactSubmitMailFailureStillSucceeds(t *testing.T) {
	sheet := &fakeSheet{}
	mailer := &fakeMailer{err: errors.New("auth failed")}

	rec := performJSON(newContactRouter(sheet, mailer, nil), http.MethodPost, "/api/contact",
		`{"name":"Jo","email":"jo@x.com","message":"1234567890"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, sheet.calls())
}

func TestContactSubmitSurvivesPanickingSheet(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	mailer := &fakeMailer{}

	rec := performJSON(newContactRouter(&fakeSheet{panic: true}, mailer, zap.New(core)), http.MethodPost, "/api/contact",
		`{"name":"Jo","email":"jo@x.com","message":"1234567890"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, mailer.calls())
	require.Equal(t, 1, logs.FilterMessage("contact_step_panicked").Len())
}

func TestContactSubmitWithoutCollaborators(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	rec := performJSON(newContactRouter(nil, nil, zap.New(core)), http.MethodPost, "/api/contact",
		`{"name":"Jo","email":"jo@x.com","message":"1234567890"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, logs.FilterMessage("contact_sheet_skipped").Len())
	require.Equal(t, 1, logs.FilterMessage("contact_mail_skipped").Len())
}

func TestContactEmailsWithoutRecipient(t *testing.T) {
	emails, err := contactEmails(models.ContactSubmission{Name: "Jo", Email: "jo@x.com", Message: "1234567890"}, "", contactNow)
	require.NoError(t, err)
	require.Len(t, emails, 1)
	require.True(t, strings.HasPrefix(emails[0].Subject, "Thank you"))
}

func TestIsCallbackWindow(t *testing.T) {
	for _, ok := range []string{"Anytime", "morning", "Afternoon (12pm - 5pm)", "Evening (5pm - 8pm)"} {
		require.True(t, IsCallbackWindow(ok), ok)
	}
	for _, bad := range []string{"", "Night", "Mornings", "(Morning)"} {
		require.False(t, IsCallbackWindow(bad), bad)
	}
}
