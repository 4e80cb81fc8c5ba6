package mailer

import (
	"context"
	"sync"

	"github.com/sendkit/sendkit/pkg/logger"
)

// SendParallel delivers one independent message per valid recipient over a
// bounded worker pool of Config.PoolSize. Invalid addresses are filtered out
// and never attempted. The call blocks until every task completes; no
// recipient's failure interrupts the others. SendParams.Async is ignored,
// each task sends synchronously.
func (s *Service) SendParallel(ctx context.Context, p SendParams) ParallelResult {
	valid := make([]string, 0, len(p.Recipients))
	for _, r := range p.Recipients {
		if ValidAddress(r) {
			valid = append(valid, r)
		}
	}

	result := ParallelResult{
		TotalRecipients: len(p.Recipients),
		ValidRecipients: len(valid),
	}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		sem = make(chan struct{}, s.cfg.PoolSize)
	)

	for _, recipient := range valid {
		wg.Add(1)
		// Submission blocks on pool saturation, nothing else.
		sem <- struct{}{}

		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			ok, err := s.Send(ctx, SendParams{
				Subject:     p.Subject,
				Template:    p.Template,
				Context:     p.Context,
				Recipients:  []string{recipient},
				Priority:    p.Priority,
				Attachments: p.Attachments,
			})
			if err != nil {
				s.log.ErrorContext(ctx, "unexpected error sending to recipient",
					logger.Recipient(recipient),
					logger.Error(err),
				)
			}

			mu.Lock()
			defer mu.Unlock()
			if ok {
				result.SuccessfulSends++
			} else {
				result.FailedSends++
				result.FailedRecipients = append(result.FailedRecipients, recipient)
			}
		}()
	}

	wg.Wait()
	return result
}
