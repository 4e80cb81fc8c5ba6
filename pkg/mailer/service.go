package mailer

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sendkit/sendkit/pkg/logger"
	"github.com/sendkit/sendkit/pkg/templates"
	"github.com/sendkit/sendkit/pkg/transport"
)

// Service is the delivery engine. It owns one lazily established transport
// connection for its lifetime and is safe for concurrent use.
type Service struct {
	cfg      Config
	tr       transport.Transport
	renderer *templates.Engine
	log      *slog.Logger
	sleep    func(time.Duration)

	connMu sync.Mutex
	conn   transport.Conn

	asyncWG sync.WaitGroup
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithSleepFunc replaces the inter-round retry sleep. Tests use it to observe
// retry pacing without waiting.
func WithSleepFunc(fn func(time.Duration)) Option {
	return func(s *Service) {
		if fn != nil {
			s.sleep = fn
		}
	}
}

// New creates a Service over the given transport and template engine.
func New(cfg Config, tr transport.Transport, renderer *templates.Engine, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if tr == nil {
		return nil, errors.Join(ErrInvalidConfig, errors.New("transport is required"))
	}
	if renderer == nil {
		return nil, errors.Join(ErrInvalidConfig, errors.New("template engine is required"))
	}

	s := &Service{
		cfg:      cfg,
		tr:       tr,
		renderer: renderer,
		log:      slog.Default(),
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Send delivers one message to the given recipients.
//
// The returned bool reports delivery (or, for async sends, acceptance). The
// error is non-nil only for fail-loud conditions: too many recipients,
// template resolution or rendering failures, unreadable attachments, and
// connection establishment failures. Transport-level delivery failures are
// logged and reported as false with a nil error.
func (s *Service) Send(ctx context.Context, p SendParams) (bool, error) {
	if len(p.Recipients) > s.cfg.MaxRecipients {
		err := errors.Join(ErrTooManyRecipients, errors.New("recipient list exceeds configured maximum"))
		s.log.ErrorContext(ctx, "refusing to send email",
			logger.Subject(p.Subject),
			logger.Template(p.Template),
			logger.RecipientCount(len(p.Recipients)),
			logger.Error(err),
		)
		return false, err
	}

	msg, err := s.buildMessage(p.Subject, p.Template, p.Context, p.Recipients, p.Priority, p.Attachments)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to build email",
			logger.Subject(p.Subject),
			logger.Template(p.Template),
			logger.RecipientCount(len(p.Recipients)),
			logger.Error(err),
		)
		return false, err
	}

	if p.Async && s.cfg.AsyncEnabled {
		s.sendAsync(ctx, p, msg)
		return true, nil
	}

	if err := s.deliver(ctx, msg); err != nil {
		if errors.Is(err, ErrConnection) {
			return false, err
		}
		s.log.ErrorContext(ctx, "failed to send email",
			logger.Subject(p.Subject),
			logger.Template(p.Template),
			logger.RecipientCount(len(p.Recipients)),
			logger.Error(err),
		)
		return false, nil
	}

	s.log.InfoContext(ctx, "email sent",
		logger.Subject(p.Subject),
		logger.RecipientCount(len(p.Recipients)),
	)
	return true, nil
}

// sendAsync hands the built message to a background goroutine. The caller
// gets no completion signal; the outcome is logged under a dispatch id.
func (s *Service) sendAsync(ctx context.Context, p SendParams, msg *transport.Message) {
	id := uuid.NewString()
	// Detach from the caller's cancellation: the caller has already been
	// told the message was accepted.
	bgCtx := context.WithoutCancel(ctx)

	s.asyncWG.Add(1)
	go func() {
		defer s.asyncWG.Done()

		if err := s.deliver(bgCtx, msg); err != nil {
			s.log.Error("async email sending failed",
				logger.DispatchID(id),
				logger.Subject(p.Subject),
				logger.Template(p.Template),
				logger.RecipientCount(len(p.Recipients)),
				logger.Error(err),
			)
			return
		}
		s.log.Info("email sent",
			logger.DispatchID(id),
			logger.Subject(p.Subject),
			logger.RecipientCount(len(p.Recipients)),
		)
	}()
}

// Wait blocks until every outstanding fire-and-forget send has finished.
func (s *Service) Wait() {
	s.asyncWG.Wait()
}

// Close drains outstanding async sends and closes the transport connection.
func (s *Service) Close() error {
	s.asyncWG.Wait()
	return s.ResetConnection()
}

// deliver sends messages over the shared connection.
func (s *Service) deliver(ctx context.Context, msgs ...*transport.Message) error {
	conn, err := s.connection(ctx)
	if err != nil {
		return err
	}
	return conn.Send(ctx, msgs...)
}
