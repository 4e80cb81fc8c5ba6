package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendkit/sendkit/pkg/logger"
)

// Event is a business event with a fixed template mapping.
type Event string

const (
	EventWelcome             Event = "welcome"
	EventPasswordReset       Event = "password_reset"
	EventAccountVerification Event = "account_verification"
)

var eventTemplates = map[Event]string{
	EventWelcome:             "welcome_email",
	EventPasswordReset:       "password_reset",
	EventAccountVerification: "account_verification",
}

// SendTransactional sends the template mapped to event to a single recipient,
// synchronously. The subject is derived as "<PlatformName> - <Event Title>".
// Unknown events are logged and reported as failure without a send attempt.
// All failures, including fail-loud ones from Send, are folded into the
// boolean result.
func (s *Service) SendTransactional(ctx context.Context, recipient string, event Event, data map[string]any) bool {
	templateName, ok := eventTemplates[event]
	if !ok {
		s.log.ErrorContext(ctx, "unknown transactional email type",
			logger.Event(string(event)),
			logger.Recipient(recipient),
		)
		return false
	}

	subject := fmt.Sprintf("%s - %s", s.cfg.PlatformName, eventTitle(event))

	sent, err := s.Send(ctx, SendParams{
		Subject:    subject,
		Template:   templateName,
		Context:    data,
		Recipients: []string{recipient},
	})
	if err != nil {
		s.log.ErrorContext(ctx, "transactional email failed",
			logger.Event(string(event)),
			logger.Recipient(recipient),
			logger.Error(err),
		)
		return false
	}
	return sent
}

// eventTitle turns "password_reset" into "Password Reset".
func eventTitle(e Event) string {
	words := strings.Split(string(e), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
