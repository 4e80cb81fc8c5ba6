package mailer

import (
	"context"
	"errors"

	"github.com/sendkit/sendkit/pkg/logger"
	"github.com/sendkit/sendkit/pkg/transport"
)

// connection returns the shared transport session, dialing it on first use.
// Establishment is single-flight: concurrent first callers never dial twice.
// A failed dial is not cached; the next access dials again.
func (s *Service) connection(ctx context.Context) (transport.Conn, error) {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	if s.conn != nil {
		return s.conn, nil
	}

	conn, err := s.tr.Connect(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "email connection failed", logger.Error(err))
		return nil, errors.Join(ErrConnection, err)
	}

	s.conn = conn
	return conn, nil
}

// ResetConnection closes and clears the shared session so the next send
// dials a fresh one. Use it to recover from a wedged connection.
func (s *Service) ResetConnection() error {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}
