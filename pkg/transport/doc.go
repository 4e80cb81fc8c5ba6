// Package transport delivers prepared email messages to an outbound mail
// system.
//
// A Transport dials the mail system and returns a Conn, the long-lived handle
// messages are handed to. Separating the dial from the session lets callers
// keep one connection open across many sends, which is what the delivery
// engine's connection manager does.
//
// Three implementations are provided:
//
//   - SMTP delivers over a persistent SMTP connection (wneessen/go-mail).
//   - Postmark delivers through the Postmark transactional API.
//   - Dev writes messages to a local directory for development.
//
// All implementations accept the same Message value, so the delivery engine
// is transport-agnostic.
package transport
