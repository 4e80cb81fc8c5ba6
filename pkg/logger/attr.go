package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Recipient records a destination address under the key "recipient".
func Recipient(addr string) slog.Attr {
	return slog.String("recipient", addr)
}

// RecipientCount records the number of recipients of a send.
func RecipientCount(n int) slog.Attr {
	return slog.Int("recipients", n)
}

// Subject records an email subject line.
func Subject(s string) slog.Attr {
	return slog.String("subject", s)
}

// Template records the template name used to render a message body.
func Template(name string) slog.Attr {
	return slog.String("template", name)
}

// Attempt records a retry attempt number as "attempt/total".
func Attempt(n, total int) slog.Attr {
	return slog.Group("attempt", slog.Int("number", n), slog.Int("of", total))
}

// DispatchID correlates log records belonging to one send operation,
// which is the only way to trace a fire-and-forget send.
func DispatchID(id string) slog.Attr {
	return slog.String("dispatch_id", id)
}

// Event records the transactional event type that triggered a send.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
