package transport

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/mrz1836/postmark"
)

// PostmarkConfig holds Postmark API credentials.
type PostmarkConfig struct {
	ServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
}

// Postmark is a Transport that delivers messages through the Postmark
// transactional API.
type Postmark struct {
	cfg PostmarkConfig
}

// NewPostmark creates a Postmark transport. Credentials are checked at
// Connect, not here, so a misconfigured transport surfaces the same way a
// broken SMTP server does.
func NewPostmark(cfg PostmarkConfig) *Postmark {
	return &Postmark{cfg: cfg}
}

// Connect validates credentials and returns the API session.
func (t *Postmark) Connect(ctx context.Context) (Conn, error) {
	if t.cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: missing server token", ErrConnect)
	}
	if t.cfg.AccountToken == "" {
		return nil, fmt.Errorf("%w: missing account token", ErrConnect)
	}
	return &postmarkConn{
		client: postmark.NewClient(t.cfg.ServerToken, t.cfg.AccountToken),
	}, nil
}

type postmarkConn struct {
	client *postmark.Client
}

// Send delivers messages through the batch endpoint. Any message the API
// rejects fails the whole call; callers attribute failures at their own
// granularity.
func (c *postmarkConn) Send(ctx context.Context, msgs ...*Message) error {
	emails := make([]postmark.Email, 0, len(msgs))
	for _, msg := range msgs {
		if len(msg.Recipients) == 0 {
			return fmt.Errorf("%w: no recipients", ErrSend)
		}
		emails = append(emails, toPostmarkEmail(msg))
	}

	responses, err := c.client.SendEmailBatch(ctx, emails)
	if err != nil {
		return errors.Join(ErrSend, err)
	}

	var rejected []error
	for i, resp := range responses {
		if resp.ErrorCode > 0 {
			rejected = append(rejected,
				fmt.Errorf("postmark error %d for %s: %s", resp.ErrorCode, emails[i].To, resp.Message))
		}
	}
	if len(rejected) > 0 {
		return errors.Join(append([]error{ErrSend}, rejected...)...)
	}
	return nil
}

// Close is a no-op; the API client holds no persistent resources.
func (c *postmarkConn) Close() error {
	return nil
}

func toPostmarkEmail(msg *Message) postmark.Email {
	email := postmark.Email{
		From:     msg.From,
		To:       strings.Join(msg.Recipients, ","),
		Subject:  msg.Subject,
		TextBody: msg.TextBody,
		HTMLBody: msg.HTMLBody,
	}
	for k, v := range msg.Headers {
		email.Headers = append(email.Headers, postmark.Header{Name: k, Value: v})
	}
	for _, att := range msg.Attachments {
		contentType := mime.TypeByExtension(filepath.Ext(att.Filename))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		email.Attachments = append(email.Attachments, postmark.Attachment{
			Name:        att.Filename,
			Content:     base64.StdEncoding.EncodeToString(att.Content),
			ContentType: contentType,
		})
	}
	return email
}
