package mailer

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/sendkit/sendkit/pkg/templates"
	"github.com/sendkit/sendkit/pkg/transport"
)

// buildMessage composes a transport-ready message: platform metadata is
// injected into a copy of the caller's context, the template is rendered to
// HTML with a stripped-tags text alternative, attachments are read into
// memory, and a high priority sets the X-Priority header.
func (s *Service) buildMessage(subject, templateName string, data map[string]any, recipients []string, priority Priority, attachments []string) (*transport.Message, error) {
	merged := make(map[string]any, len(data)+4)
	maps.Copy(merged, data)
	merged["site_name"] = s.cfg.PlatformName
	merged["company_address"] = s.cfg.PlatformAddress
	merged["support_email"] = s.cfg.SupportEmail
	merged["unsubscribe_link"] = s.cfg.UnsubscribeLink

	htmlBody, err := s.renderer.Render(templateName, merged)
	if err != nil {
		return nil, err
	}

	msg := &transport.Message{
		From:       s.cfg.FromAddress,
		Recipients: slices.Clone(recipients),
		Subject:    subject,
		TextBody:   templates.StripTags(htmlBody),
		HTMLBody:   htmlBody,
	}

	if priority == PriorityHigh {
		msg.Headers = map[string]string{"X-Priority": "1"}
	}

	for _, path := range attachments {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrAttachment, path, err)
		}
		msg.Attachments = append(msg.Attachments, transport.Attachment{
			Filename: filepath.Base(path),
			Content:  content,
		})
	}

	return msg, nil
}
