package service

import (
	"testing"
	"time"

	"smarthire-api/modules/notification/dto"

	"github.com/stretchr/testify/assert"
)

func invitePayload() *dto.InterviewInvitePayload {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return &dto.InterviewInvitePayload{
		Recipient:    "dana@example.com",
		Summary:      "Interview Round 1: Dana Lee",
		StartTime:    start,
		EndTime:      start.Add(30 * time.Minute),
		AcceptToken:  "tok-accept",
		DeclineToken: "tok-decline",
	}
}

func TestComposeInviteHTML_CarriesBothResponseLinks(t *testing.T) {
	body := ComposeInviteHTML(invitePayload(), "https://hire.example.com")

	assert.Contains(t, body, "https://hire.example.com/respond?id=tok-accept&action=accept")
	assert.Contains(t, body, "https://hire.example.com/respond?id=tok-decline&action=decline")
	assert.Contains(t, body, "Interview Round 1: Dana Lee")
	assert.Contains(t, body, "10:00 to 10:30")
}

func TestComposeInviteHTML_PlaceholderWithoutConferencingLink(t *testing.T) {
	body := ComposeInviteHTML(invitePayload(), "https://hire.example.com")
	assert.Contains(t, body, "conferencing link will follow")
}

func TestComposeInviteHTML_IncludesConferencingLink(t *testing.T) {
	payload := invitePayload()
	payload.ConferencingLink = "https://meet.example.com/xyz"

	body := ComposeInviteHTML(payload, "https://hire.example.com")
	assert.Contains(t, body, "https://meet.example.com/xyz")
	assert.NotContains(t, body, "will follow")
}

func TestComposeInviteHTML_EscapesSummary(t *testing.T) {
	payload := invitePayload()
	payload.Summary = `Round <1> & "final"`

	body := ComposeInviteHTML(payload, "https://hire.example.com")
	assert.NotContains(t, body, "<1>")
	assert.Contains(t, body, "&lt;1&gt;")
}
