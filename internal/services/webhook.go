package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/tarimpazar/tarimpazar/internal/models"
)

type DiscordWebhookField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type DiscordEmbed struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Color       int                   `json:"color"`
	Fields      []DiscordWebhookField `json:"fields"`
	Timestamp   string                `json:"timestamp"`
}

type DiscordWebhookRequest struct {
	Username string         `json:"username"`
	Embeds   []DiscordEmbed `json:"embeds"`
}

type SlackField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

type SlackAttachment struct {
	Color     string       `json:"color"`
	Title     string       `json:"title"`
	Fields    []SlackField `json:"fields"`
	Timestamp int64        `json:"ts"`
}

type SlackWebhookRequest struct {
	Username    string            `json:"username"`
	Text        string            `json:"text"`
	Attachments []SlackAttachment `json:"attachments"`
}

const (
	ColorOrange = 16753920 // #FFA500 - new report awaiting review

	WebhookUsername = "Tarimpazar Moderation"
)

// SendModerationAlert posts a new report to the moderation channels
// configured via MODERATION_DISCORD_WEBHOOK and MODERATION_SLACK_WEBHOOK.
// Unconfigured channels are skipped; this is fire-and-forget from the
// caller's point of view.
func SendModerationAlert(report models.Report) error {
	if url := os.Getenv("MODERATION_DISCORD_WEBHOOK"); url != "" {
		if err := sendDiscordReportAlert(url, report); err != nil {
			return fmt.Errorf("discord: %w", err)
		}
	}

	if url := os.Getenv("MODERATION_SLACK_WEBHOOK"); url != "" {
		if err := sendSlackReportAlert(url, report); err != nil {
			return fmt.Errorf("slack: %w", err)
		}
	}

	return nil
}

func sendDiscordReportAlert(webhookURL string, report models.Report) error {
	payload := DiscordWebhookRequest{
		Username: WebhookUsername,
		Embeds: []DiscordEmbed{
			{
				Title:       "New abuse report",
				Description: fmt.Sprintf("User %d reported user %d.", report.ReporterID, report.ReportedID),
				Color:       ColorOrange,
				Fields: []DiscordWebhookField{
					{Name: "Reason", Value: report.Reason, Inline: false},
					{Name: "Target", Value: formatReportTarget(report), Inline: true},
					{Name: "Status", Value: report.Status, Inline: true},
				},
				Timestamp: time.Now().Format(time.RFC3339),
			},
		},
	}

	return postWebhook(webhookURL, payload)
}

func sendSlackReportAlert(webhookURL string, report models.Report) error {
	payload := SlackWebhookRequest{
		Username: WebhookUsername,
		Text:     fmt.Sprintf("New abuse report: user %d reported user %d", report.ReporterID, report.ReportedID),
		Attachments: []SlackAttachment{
			{
				Color: "warning",
				Title: "Report details",
				Fields: []SlackField{
					{Title: "Reason", Value: report.Reason, Short: false},
					{Title: "Target", Value: formatReportTarget(report), Short: true},
					{Title: "Status", Value: report.Status, Short: true},
				},
				Timestamp: time.Now().Unix(),
			},
		},
	}

	return postWebhook(webhookURL, payload)
}

func formatReportTarget(report models.Report) string {
	if report.TargetType == models.ReportTargetProfile {
		return "profile"
	}
	return fmt.Sprintf("%s #%d", report.TargetType, report.TargetID)
}

func postWebhook(webhookURL string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	resp, err := http.Post(webhookURL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
