package mailer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendkit/sendkit/pkg/mailer"
)

func TestSend_DoesNotMutateCallerContext(t *testing.T) {
	t.Parallel()

	tr := newFakeTransport()
	svc := newTestService(t, tr, nil)

	callerCtx := map[string]any{"username": "alice"}
	ok, err := svc.Send(context.Background(), mailer.SendParams{
		Subject:    "Hello",
		Template:   "notice",
		Context:    callerCtx,
		Recipients: []string{"alice@example.com"},
	})
	require.NoError(t, err)
	require.True(t, ok)

	// Platform metadata is injected into a copy, not the caller's map.
	assert.Equal(t, map[string]any{"username": "alice"}, callerCtx)
}

func TestSend_InjectsPlatformMetadata(t *testing.T) {
	t.Parallel()

	tr := newFakeTransport()
	engine := testEngine(t)
	require.NoError(t, engine.RegisterString("meta", "{{ site_name }}|{{ support_email }}|{{ unsubscribe_link }}"))

	cfg := testConfig()
	cfg.PlatformName = "Acme Mail"
	svc, err := mailer.New(cfg, tr, engine)
	require.NoError(t, err)

	_, err = svc.Send(context.Background(), mailer.SendParams{
		Subject:    "Meta",
		Template:   "meta",
		Recipients: []string{"alice@example.com"},
	})
	require.NoError(t, err)

	calls := tr.conn.sendCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Acme Mail|support@example.com|", calls[0][0].HTMLBody)
}

func TestSend_HighPrioritySetsHeader(t *testing.T) {
	t.Parallel()

	tr := newFakeTransport()
	svc := newTestService(t, tr, nil)

	_, err := svc.Send(context.Background(), mailer.SendParams{
		Subject:    "Urgent",
		Template:   "notice",
		Recipients: []string{"alice@example.com"},
		Priority:   mailer.PriorityHigh,
	})
	require.NoError(t, err)

	calls := tr.conn.sendCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, map[string]string{"X-Priority": "1"}, calls[0][0].Headers)
}

func TestSend_OtherPrioritiesAreNoOps(t *testing.T) {
	t.Parallel()

	tr := newFakeTransport()
	svc := newTestService(t, tr, nil)

	for _, priority := range []mailer.Priority{mailer.PriorityMedium, mailer.PriorityLow, ""} {
		_, err := svc.Send(context.Background(), mailer.SendParams{
			Subject:    "Normal",
			Template:   "notice",
			Recipients: []string{"alice@example.com"},
			Priority:   priority,
		})
		require.NoError(t, err)
	}

	for _, call := range tr.conn.sendCalls() {
		assert.Empty(t, call[0].Headers)
	}
}

func TestSend_ReadsAttachments(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "invoice.txt")
	require.NoError(t, os.WriteFile(path, []byte("amount due: 42"), 0o644))

	tr := newFakeTransport()
	svc := newTestService(t, tr, nil)

	ok, err := svc.Send(context.Background(), mailer.SendParams{
		Subject:     "Invoice",
		Template:    "notice",
		Recipients:  []string{"alice@example.com"},
		Attachments: []string{path},
	})
	require.NoError(t, err)
	require.True(t, ok)

	calls := tr.conn.sendCalls()
	require.Len(t, calls, 1)
	require.Len(t, calls[0][0].Attachments, 1)
	assert.Equal(t, "invoice.txt", calls[0][0].Attachments[0].Filename)
	assert.Equal(t, []byte("amount due: 42"), calls[0][0].Attachments[0].Content)
}

func TestSend_UnreadableAttachmentFailsLoud(t *testing.T) {
	t.Parallel()

	tr := newFakeTransport()
	svc := newTestService(t, tr, nil)

	ok, err := svc.Send(context.Background(), mailer.SendParams{
		Subject:     "Invoice",
		Template:    "notice",
		Recipients:  []string{"alice@example.com"},
		Attachments: []string{filepath.Join(t.TempDir(), "does-not-exist.pdf")},
	})
	assert.False(t, ok)
	assert.ErrorIs(t, err, mailer.ErrAttachment)
	assert.Empty(t, tr.conn.sendCalls())
}
