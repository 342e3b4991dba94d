package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"smarthire-api/core/config"
	"smarthire-api/core/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const gmailSendAPI = "https://gmail.googleapis.com/gmail/v1/users/me/messages/send"

// Mailer delivers one email.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type gmailMailer struct {
	senderEmail string
	senderName  string
	tokenSource oauth2.TokenSource
	httpClient  *http.Client
}

// NewGmailMailer builds a Mailer that sends through the Gmail REST API using
// the service account's stored refresh token.
func NewGmailMailer() Mailer {
	cfg := config.Get()
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.GoogleAPI.ClientID,
		ClientSecret: cfg.GoogleAPI.ClientSecret,
		Endpoint:     google.Endpoint,
	}
	src := oauthCfg.TokenSource(context.Background(), &oauth2.Token{
		RefreshToken: cfg.Mail.RefreshToken,
	})

	return &gmailMailer{
		senderEmail: cfg.Mail.SenderEmail,
		senderName:  cfg.Mail.SenderName,
		tokenSource: oauth2.ReuseTokenSource(nil, src),
		httpClient:  &http.Client{},
	}
}

func (m *gmailMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	token, err := m.tokenSource.Token()
	if err != nil {
		return fmt.Errorf("failed to obtain mail token: %w", err)
	}

	raw := m.buildMessage(to, subject, htmlBody)
	payload, _ := json.Marshal(map[string]string{
		"raw": base64.URLEncoding.EncodeToString([]byte(raw)),
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, gmailSendAPI, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("gmail send API returned %d: %s", resp.StatusCode, string(body))
	}

	logger.Info("GmailMailer:Sent", "to", to, "subject", subject)
	return nil
}

func (m *gmailMailer) buildMessage(to, subject, htmlBody string) string {
	from := m.senderEmail
	if m.senderName != "" {
		from = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", m.senderName), m.senderEmail)
	}
	return fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s",
		from, to, mime.QEncoding.Encode("utf-8", subject), htmlBody)
}
