package mailer

import (
	"context"
	"slices"
	"time"

	"github.com/sendkit/sendkit/pkg/logger"
)

// Retry re-attempts previously failed sends for up to attempts rounds,
// sleeping delay between rounds while records remain pending. A record drops
// out of the pending set on its first successful send. The still-pending
// records are returned after the last round; the input slice is not mutated.
//
// Rounds run sequentially on the calling goroutine; concurrent Retry calls
// over the same records are not supported.
func (s *Service) Retry(ctx context.Context, records []FailedRecipient, attempts int, delay time.Duration) []FailedRecipient {
	pending := slices.Clone(records)

	for attempt := 1; attempt <= attempts && len(pending) > 0; attempt++ {
		var remaining []FailedRecipient
		for _, rec := range pending {
			if err := s.retryOne(ctx, rec); err != nil {
				s.log.ErrorContext(ctx, "retry failed",
					logger.Recipient(rec.Recipient),
					logger.Subject(rec.Subject),
					logger.Attempt(attempt, attempts),
					logger.Error(err),
				)
				remaining = append(remaining, rec)
				continue
			}
			s.log.InfoContext(ctx, "retried email sent",
				logger.Recipient(rec.Recipient),
				logger.Attempt(attempt, attempts),
			)
		}
		pending = remaining

		if len(pending) > 0 && attempt < attempts {
			s.sleep(delay)
		}
	}

	return pending
}

func (s *Service) retryOne(ctx context.Context, rec FailedRecipient) error {
	msg, err := s.buildMessage(rec.Subject, rec.Template, rec.Context, []string{rec.Recipient}, "", nil)
	if err != nil {
		return err
	}
	return s.deliver(ctx, msg)
}
