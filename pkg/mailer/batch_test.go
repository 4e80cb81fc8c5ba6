package mailer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendkit/sendkit/pkg/mailer"
	"github.com/sendkit/sendkit/pkg/templates"
	"github.com/sendkit/sendkit/pkg/transport"
)

func TestSendBatch_ChunksPreserveInputOrder(t *testing.T) {
	t.Parallel()

	tr := newFakeTransport()
	svc := newTestService(t, tr, func(cfg *mailer.Config) { cfg.BatchSize = 2 })

	recipients := []string{
		"r1@example.com", "r2@example.com",
		"r3@example.com", "r4@example.com",
		"r5@example.com",
	}
	result, err := svc.SendBatch(context.Background(), mailer.BatchParams{
		Subject:    "Bulk notice",
		Template:   "notice",
		Recipients: recipients,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, result.Succeeded)
	assert.Zero(t, result.Failed)
	assert.Empty(t, result.FailedRecipients)

	calls := tr.conn.sendCalls()
	require.Len(t, calls, 3)
	assert.Len(t, calls[0], 2)
	assert.Len(t, calls[1], 2)
	assert.Len(t, calls[2], 1)

	assert.Equal(t, []string{"r1@example.com"}, calls[0][0].Recipients)
	assert.Equal(t, []string{"r2@example.com"}, calls[0][1].Recipients)
	assert.Equal(t, []string{"r3@example.com"}, calls[1][0].Recipients)
	assert.Equal(t, []string{"r4@example.com"}, calls[1][1].Recipients)
	assert.Equal(t, []string{"r5@example.com"}, calls[2][0].Recipients)
}

func TestSendBatch_FailedChunkIsolated(t *testing.T) {
	t.Parallel()

	tr := newFakeTransport()
	call := 0
	tr.conn.failWith = func([]*transport.Message) error {
		call++
		if call == 2 {
			return errors.New("smtp 421 service unavailable")
		}
		return nil
	}
	svc := newTestService(t, tr, func(cfg *mailer.Config) { cfg.BatchSize = 2 })

	result, err := svc.SendBatch(context.Background(), mailer.BatchParams{
		Subject:  "Bulk notice",
		Template: "notice",
		Context:  map[string]any{"username": "all"},
		Recipients: []string{
			"r1@example.com", "r2@example.com",
			"r3@example.com", "r4@example.com",
			"r5@example.com",
		},
	})
	require.NoError(t, err)

	// The whole second chunk fails, every other chunk still goes out.
	assert.Equal(t, 3, result.Succeeded)
	assert.Equal(t, 2, result.Failed)
	require.Len(t, result.FailedRecipients, 2)

	assert.Equal(t, "r3@example.com", result.FailedRecipients[0].Recipient)
	assert.Equal(t, "r4@example.com", result.FailedRecipients[1].Recipient)
	for _, failed := range result.FailedRecipients {
		assert.Equal(t, "Bulk notice", failed.Subject)
		assert.Equal(t, "notice", failed.Template)
		assert.Equal(t, map[string]any{"username": "all"}, failed.Context)
		assert.Contains(t, failed.Err, "421")
	}
}

func TestSendBatch_TemplateErrorAborts(t *testing.T) {
	t.Parallel()

	tr := newFakeTransport()
	svc := newTestService(t, tr, nil)

	_, err := svc.SendBatch(context.Background(), mailer.BatchParams{
		Subject:    "Bulk notice",
		Template:   "missing_template",
		Recipients: []string{"r1@example.com"},
	})
	assert.ErrorIs(t, err, templates.ErrTemplateNotFound)
	assert.Empty(t, tr.conn.sendCalls())
}

func TestSendBatch_ConnectionErrorRecordedPerChunk(t *testing.T) {
	t.Parallel()

	tr := newFakeTransport()
	tr.connectErr = errors.New("dial tcp: refused")
	svc := newTestService(t, tr, func(cfg *mailer.Config) { cfg.BatchSize = 2 })

	result, err := svc.SendBatch(context.Background(), mailer.BatchParams{
		Subject:    "Bulk notice",
		Template:   "notice",
		Recipients: []string{"r1@example.com", "r2@example.com", "r3@example.com"},
	})
	require.NoError(t, err)

	assert.Zero(t, result.Succeeded)
	assert.Equal(t, 3, result.Failed)
	assert.Len(t, result.FailedRecipients, 3)
}

func TestSendBatch_EmptyRecipients(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newFakeTransport(), nil)

	result, err := svc.SendBatch(context.Background(), mailer.BatchParams{
		Subject:  "Bulk notice",
		Template: "notice",
	})
	require.NoError(t, err)
	assert.Zero(t, result.Succeeded)
	assert.Zero(t, result.Failed)
}
