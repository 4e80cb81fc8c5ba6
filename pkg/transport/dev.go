package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync/atomic"
	"time"
)

// Dev is a Transport for local development: instead of delivering, it writes
// each message as an HTML file plus a JSON metadata file into a directory.
type Dev struct {
	dir string
	seq atomic.Uint64
}

// NewDev creates a development transport writing into dir. The directory is
// created at Connect if it does not exist.
func NewDev(dir string) *Dev {
	return &Dev{dir: dir}
}

// Connect ensures the output directory exists.
func (t *Dev) Connect(ctx context.Context) (Conn, error) {
	if err := os.MkdirAll(t.dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create directory: %v", ErrConnect, err)
	}
	return &devConn{dev: t}, nil
}

type devConn struct {
	dev *Dev
}

type devMetadata struct {
	Timestamp   string            `json:"timestamp"`
	From        string            `json:"from"`
	Recipients  []string          `json:"recipients"`
	Subject     string            `json:"subject"`
	Headers     map[string]string `json:"headers,omitempty"`
	Attachments []string          `json:"attachments,omitempty"`
}

// Send writes every message to disk. A sequence number keeps filenames unique
// when several messages arrive within the same second.
func (c *devConn) Send(ctx context.Context, msgs ...*Message) error {
	for _, msg := range msgs {
		if err := c.write(msg); err != nil {
			return err
		}
	}
	return nil
}

func (c *devConn) write(msg *Message) error {
	now := time.Now()
	base := fmt.Sprintf("%s_%04d_%s",
		now.Format("2006_01_02_150405"),
		c.dev.seq.Add(1),
		sanitizeFilename(msg.Subject),
	)

	body := msg.HTMLBody
	if body == "" {
		body = msg.TextBody
	}
	htmlPath := filepath.Join(c.dev.dir, base+".html")
	if err := os.WriteFile(htmlPath, []byte(body), 0o644); err != nil {
		return fmt.Errorf("%w: write HTML file: %v", ErrSend, err)
	}

	meta := devMetadata{
		Timestamp:  now.Format(time.RFC3339),
		From:       msg.From,
		Recipients: msg.Recipients,
		Subject:    msg.Subject,
		Headers:    msg.Headers,
	}
	for _, att := range msg.Attachments {
		meta.Attachments = append(meta.Attachments, att.Filename)
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal metadata: %v", ErrSend, err)
	}
	jsonPath := filepath.Join(c.dev.dir, base+".json")
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return fmt.Errorf("%w: write JSON file: %v", ErrSend, err)
	}
	return nil
}

func (c *devConn) Close() error {
	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
