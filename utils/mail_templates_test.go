package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"makeyou-digital/backend/models"
)

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func TestLeadNotificationPlaceholders(t *testing.T) {
	email, err := LeadNotification(models.ContactSubmission{
		Name:    "Jo",
		Email:   "jo@x.com",
		Message: "1234567890",
	}, "owner@example.com", testNow)
	require.NoError(t, err)

	require.Equal(t, "owner@example.com", email.To)
	require.Equal(t, "New Lead: Jo", email.Subject)
	require.Contains(t, email.Text, "Preferred Callback Time: Not specified")
	require.Contains(t, email.Text, "Phone: Not provided")
	require.Contains(t, email.HTML, "Not specified")
}

func TestContactConfirmationEscapesHTML(t *testing.T) {
	email, err := ContactConfirmation(models.ContactSubmission{
		Name:         "Jo",
		Email:        "jo@x.com",
		CallbackTime: "Evening (5pm - 8pm)",
		Message:      "<script>alert(1)</script>",
	}, testNow)
	require.NoError(t, err)

	require.Equal(t, "jo@x.com", email.To)
	require.Equal(t, "MakeYou Digital", email.FromName)
	require.NotContains(t, email.HTML, "<script>")
	require.Contains(t, email.HTML, "Evening (5pm - 8pm)")
	require.Contains(t, email.HTML, "2026 MakeYou Digital")
	require.Contains(t, email.Text, "Hi Jo,")
}

func TestContactConfirmationOmitsCallbackLine(t *testing.T) {
	email, err := ContactConfirmation(models.ContactSubmission{Name: "Jo", Email: "jo@x.com", Message: "1234567890"}, testNow)
	require.NoError(t, err)
	require.NotContains(t, email.HTML, "Preferred callback time")
}
