package transport

import "context"

// Message is a transport-ready email. It is built once per send operation and
// not modified afterwards; the send operation that created it owns it.
type Message struct {
	From        string
	Recipients  []string
	Subject     string
	TextBody    string
	HTMLBody    string
	Headers     map[string]string
	Attachments []Attachment
}

// Attachment is a file already read into memory. Reading happens at message
// build time so unreadable paths fail before any connection is dialed.
type Attachment struct {
	Filename string
	Content  []byte
}

// Transport dials the outbound mail system.
type Transport interface {
	Connect(ctx context.Context) (Conn, error)
}

// Conn is an established session with the mail system. Send delivers every
// message or fails the call as a whole; per-message attribution is up to the
// caller. Implementations must be safe for concurrent Send calls.
type Conn interface {
	Send(ctx context.Context, msgs ...*Message) error
	Close() error
}
