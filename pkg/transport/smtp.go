package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/wneessen/go-mail"
)

// SMTPConfig holds SMTP connection parameters.
type SMTPConfig struct {
	Host     string        `env:"SMTP_HOST,required"`
	Port     int           `env:"SMTP_PORT" envDefault:"587"`
	Username string        `env:"SMTP_USERNAME"`
	Password string        `env:"SMTP_PASSWORD"`
	TLS      bool          `env:"SMTP_TLS" envDefault:"true"`
	Timeout  time.Duration `env:"SMTP_TIMEOUT" envDefault:"30s"`
}

// SMTP is a Transport that delivers messages over a persistent SMTP
// connection.
type SMTP struct {
	cfg SMTPConfig
}

// NewSMTP creates an SMTP transport. The connection itself is not dialed
// until Connect.
func NewSMTP(cfg SMTPConfig) (*SMTP, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: Host is required", ErrInvalidConfig)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &SMTP{cfg: cfg}, nil
}

// Connect dials the SMTP server and returns the established session. The
// dial is bound by the configured timeout.
func (t *SMTP) Connect(ctx context.Context) (Conn, error) {
	opts := []mail.Option{
		mail.WithPort(t.cfg.Port),
		mail.WithTimeout(t.cfg.Timeout),
	}
	if t.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(t.cfg.Username),
			mail.WithPassword(t.cfg.Password),
		)
	}
	if t.cfg.TLS {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(t.cfg.Host, opts...)
	if err != nil {
		return nil, errors.Join(ErrConnect, err)
	}

	dialCtx, cancel := context.WithTimeout(ctx, t.cfg.Timeout)
	defer cancel()

	if err := client.DialWithContext(dialCtx); err != nil {
		return nil, errors.Join(ErrConnect, err)
	}

	return &smtpConn{client: client}, nil
}

type smtpConn struct {
	mu     sync.Mutex
	client *mail.Client
}

// Send converts the messages to MIME and delivers them over the held client.
// The client is not safe for interleaved commands, so sends are serialized.
func (c *smtpConn) Send(ctx context.Context, msgs ...*Message) error {
	built := make([]*mail.Msg, 0, len(msgs))
	for _, msg := range msgs {
		m, err := buildMIME(msg)
		if err != nil {
			return err
		}
		built = append(built, m)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.client.Send(built...); err != nil {
		return errors.Join(ErrSend, err)
	}
	return nil
}

func (c *smtpConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.client.Close()
}

func buildMIME(msg *Message) (*mail.Msg, error) {
	if len(msg.Recipients) == 0 {
		return nil, fmt.Errorf("%w: no recipients", ErrSend)
	}

	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("%w: set from: %v", ErrSend, err)
	}
	if err := m.To(msg.Recipients...); err != nil {
		return nil, fmt.Errorf("%w: set to: %v", ErrSend, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.TextBody)
	if msg.HTMLBody != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTMLBody)
	}
	for k, v := range msg.Headers {
		m.SetGenHeader(mail.Header(k), v)
	}
	for _, att := range msg.Attachments {
		if err := m.AttachReader(att.Filename, bytes.NewReader(att.Content)); err != nil {
			return nil, fmt.Errorf("%w: attach %s: %v", ErrSend, att.Filename, err)
		}
	}
	return m, nil
}
