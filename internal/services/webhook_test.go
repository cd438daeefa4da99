package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarimpazar/tarimpazar/internal/models"
)

func TestSendModerationAlertSkipsWhenUnconfigured(t *testing.T) {
	t.Setenv("MODERATION_DISCORD_WEBHOOK", "")
	t.Setenv("MODERATION_SLACK_WEBHOOK", "")

	err := SendModerationAlert(models.Report{Reason: "spam"})
	assert.NoError(t, err)
}

func TestSendModerationAlertPostsToSlack(t *testing.T) {
	var received SlackWebhookRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	t.Setenv("MODERATION_DISCORD_WEBHOOK", "")
	t.Setenv("MODERATION_SLACK_WEBHOOK", server.URL)

	report := models.Report{
		ReporterID: 1,
		ReportedID: 2,
		Reason:     "spam",
		TargetType: models.ReportTargetProduct,
		TargetID:   42,
		Status:     models.ReportStatusPending,
	}

	require.NoError(t, SendModerationAlert(report))
	require.Len(t, received.Attachments, 1)
	assert.Equal(t, "spam", received.Attachments[0].Fields[0].Value)
	assert.Equal(t, "product #42", received.Attachments[0].Fields[1].Value)
}

func TestSendModerationAlertReportsHTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	t.Setenv("MODERATION_DISCORD_WEBHOOK", "")
	t.Setenv("MODERATION_SLACK_WEBHOOK", server.URL)

	err := SendModerationAlert(models.Report{Reason: "spam", TargetType: models.ReportTargetProfile})
	assert.Error(t, err)
}
