package google

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"time"

	emaildomain "github.com/joelcalkins28/JobTracker-CRM/internal/email/domain"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const gmailUser = "me"

// getGmailService creates a Gmail service with the user's tokens.
func (s *Service) getGmailService(ctx context.Context, accessToken, refreshToken string, onTokenRefresh TokenUpdateFunc) (*gmail.Service, error) {
	client := s.tokenClient(ctx, accessToken, refreshToken, onTokenRefresh)

	srv, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Gmail service: %v", err)
	}
	return srv, nil
}

// ListMessages returns message ids matching the filters plus the opaque next
// page token. Pages are never followed automatically.
func (s *Service) ListMessages(ctx context.Context, accessToken, refreshToken string, opts emaildomain.FetchOptions, onTokenRefresh TokenUpdateFunc) ([]string, string, error) {
	srv, err := s.getGmailService(ctx, accessToken, refreshToken, onTokenRefresh)
	if err != nil {
		return nil, "", err
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = emaildomain.DefaultMaxResults
	}
	if maxResults > 500 {
		maxResults = 500 // Gmail API maximum
	}

	listQuery := srv.Users.Messages.List(gmailUser).MaxResults(maxResults)
	if opts.Query != "" {
		listQuery = listQuery.Q(opts.Query)
	}
	if len(opts.LabelIDs) > 0 {
		listQuery = listQuery.LabelIds(opts.LabelIDs...)
	}
	if opts.PageToken != "" {
		listQuery = listQuery.PageToken(opts.PageToken)
	}

	resp, err := listQuery.Do()
	if err != nil {
		return nil, "", fmt.Errorf("unable to retrieve messages: %v", err)
	}

	ids := make([]string, 0, len(resp.Messages))
	for _, msg := range resp.Messages {
		ids = append(ids, msg.Id)
	}
	return ids, resp.NextPageToken, nil
}

// GetMessage fetches one message's full content.
func (s *Service) GetMessage(ctx context.Context, accessToken, refreshToken, messageID string, onTokenRefresh TokenUpdateFunc) (*emaildomain.RemoteMessage, error) {
	srv, err := s.getGmailService(ctx, accessToken, refreshToken, onTokenRefresh)
	if err != nil {
		return nil, err
	}

	msg, err := srv.Users.Messages.Get(gmailUser, messageID).Format("full").Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve message: %v", err)
	}

	return convertGmailMessage(msg), nil
}

// SendMessage assembles an RFC 822 message and sends it through Gmail.
func (s *Service) SendMessage(ctx context.Context, accessToken, refreshToken, from, to, cc, bcc, subject, body string, onTokenRefresh TokenUpdateFunc) (*emaildomain.RemoteMessage, error) {
	srv, err := s.getGmailService(ctx, accessToken, refreshToken, onTokenRefresh)
	if err != nil {
		return nil, err
	}

	var emailMsg bytes.Buffer
	if from != "" {
		emailMsg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	}
	emailMsg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	if cc != "" {
		emailMsg.WriteString(fmt.Sprintf("Cc: %s\r\n", cc))
	}
	if bcc != "" {
		emailMsg.WriteString(fmt.Sprintf("Bcc: %s\r\n", bcc))
	}
	// Encode subject to handle non-ASCII characters (RFC 2047)
	encodedSubject := fmt.Sprintf("=?utf-8?B?%s?=", base64.StdEncoding.EncodeToString([]byte(subject)))
	emailMsg.WriteString(fmt.Sprintf("Subject: %s\r\n", encodedSubject))
	emailMsg.WriteString("MIME-Version: 1.0\r\n")
	emailMsg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	emailMsg.WriteString(body)

	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString(emailMsg.Bytes()),
	}

	sent, err := srv.Users.Messages.Send(gmailUser, msg).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to send message: %v", err)
	}

	return &emaildomain.RemoteMessage{
		ID:       sent.Id,
		ThreadID: sent.ThreadId,
		Subject:  subject,
		From:     from,
		To:       to,
		Date:     time.Now(),
		Body:     body,
		IsRead:   true,
	}, nil
}

// Helper functions

func convertGmailMessage(msg *gmail.Message) *emaildomain.RemoteMessage {
	return &emaildomain.RemoteMessage{
		ID:       msg.Id,
		ThreadID: msg.ThreadId,
		Subject:  getHeader(msg.Payload.Headers, "Subject"),
		From:     getHeader(msg.Payload.Headers, "From"),
		To:       getHeader(msg.Payload.Headers, "To"),
		Date:     time.Unix(msg.InternalDate/1000, 0),
		Body:     getMessageBody(msg.Payload),
		IsRead:   !hasLabel(msg.LabelIds, "UNREAD"),
	}
}

func getHeader(headers []*gmail.MessagePartHeader, name string) string {
	for _, header := range headers {
		if header.Name == name {
			return header.Value
		}
	}
	return ""
}

func getMessageBody(payload *gmail.MessagePart) string {
	// If the payload itself is the body
	if payload.Body != nil && payload.Body.Data != "" {
		data, err := base64.URLEncoding.DecodeString(payload.Body.Data)
		if err == nil {
			return string(data)
		}
	}

	var htmlBody string
	var plainBody string

	var findBody func(parts []*gmail.MessagePart)
	findBody = func(parts []*gmail.MessagePart) {
		for _, part := range parts {
			if part.MimeType == "text/html" {
				if part.Body != nil && part.Body.Data != "" {
					data, err := base64.URLEncoding.DecodeString(part.Body.Data)
					if err == nil {
						htmlBody = string(data)
					}
				}
			} else if part.MimeType == "text/plain" {
				if part.Body != nil && part.Body.Data != "" {
					data, err := base64.URLEncoding.DecodeString(part.Body.Data)
					if err == nil {
						plainBody = string(data)
					}
				}
			}

			if len(part.Parts) > 0 {
				findBody(part.Parts)
			}
		}
	}

	findBody(payload.Parts)

	if plainBody != "" {
		return plainBody
	}
	return htmlBody
}

func hasLabel(labels []string, labelID string) bool {
	for _, label := range labels {
		if label == labelID {
			return true
		}
	}
	return false
}
