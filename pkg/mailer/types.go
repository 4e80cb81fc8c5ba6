package mailer

// Priority marks the urgency of a message. Only PriorityHigh changes the
// wire format (an X-Priority: 1 header); other values are accepted and have
// no effect.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// SendParams describes a single send operation.
type SendParams struct {
	Subject  string
	Template string
	// Context carries template variables. The engine copies it before
	// injecting platform metadata; the caller's map is never mutated.
	Context    map[string]any
	Recipients []string
	Priority   Priority
	// Attachments are file paths, read at build time.
	Attachments []string
	// Async hands the message to a background goroutine and reports success
	// as soon as it is accepted. Requires Config.AsyncEnabled.
	Async bool
}

// BatchParams describes a batch send over a recipient list.
type BatchParams struct {
	Subject    string
	Template   string
	Context    map[string]any
	Recipients []string
}

// ParallelResult aggregates a parallel send.
type ParallelResult struct {
	TotalRecipients int
	ValidRecipients int
	SuccessfulSends int
	FailedSends     int
	// FailedRecipients is ordered by task completion, not submission, so the
	// order varies across runs.
	FailedRecipients []string
}

// BatchResult aggregates a batch send.
type BatchResult struct {
	Succeeded        int
	Failed           int
	FailedRecipients []FailedRecipient
}

// FailedRecipient records one failed send with everything Retry needs to
// rebuild and re-attempt it.
type FailedRecipient struct {
	Recipient string
	Subject   string
	Template  string
	Context   map[string]any
	Err       string
}
