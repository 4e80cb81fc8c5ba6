package mailer

import (
	"context"
	"slices"

	"github.com/sendkit/sendkit/pkg/logger"
	"github.com/sendkit/sendkit/pkg/transport"
)

// SendBatch partitions the recipients into chunks of Config.BatchSize,
// preserving input order, and sends each chunk's messages together over one
// connection acquisition. Chunks are processed sequentially.
//
// Failure attribution is per chunk: if a chunk send fails, every recipient
// in it is recorded as failed, even when the transport delivered part of the
// chunk. That trades precision for connection reuse and simple reporting.
//
// Template resolution and rendering errors abort the batch and are returned;
// the partial result covers the chunks processed before the error.
func (s *Service) SendBatch(ctx context.Context, p BatchParams) (BatchResult, error) {
	var result BatchResult

	for chunk := range slices.Chunk(p.Recipients, s.cfg.BatchSize) {
		msgs := make([]*transport.Message, 0, len(chunk))
		for _, recipient := range chunk {
			msg, err := s.buildMessage(p.Subject, p.Template, p.Context, []string{recipient}, "", nil)
			if err != nil {
				return result, err
			}
			msgs = append(msgs, msg)
		}

		if err := s.deliver(ctx, msgs...); err != nil {
			s.log.ErrorContext(ctx, "batch email sending failed",
				logger.Subject(p.Subject),
				logger.Template(p.Template),
				logger.RecipientCount(len(chunk)),
				logger.Error(err),
			)
			result.Failed += len(chunk)
			for _, recipient := range chunk {
				result.FailedRecipients = append(result.FailedRecipients, FailedRecipient{
					Recipient: recipient,
					Subject:   p.Subject,
					Template:  p.Template,
					Context:   p.Context,
					Err:       err.Error(),
				})
			}
			continue
		}

		result.Succeeded += len(chunk)
	}

	return result, nil
}
