// Package mailer is a templated transactional-email delivery engine.
//
// A Service renders message bodies from Liquid templates, validates
// recipients, and delivers through a pooled transport connection. Four
// delivery strategies are provided:
//
//   - Send: one message, synchronous or fire-and-forget asynchronous.
//   - SendParallel: one message per recipient over a bounded worker pool,
//     with an aggregated result.
//   - SendBatch: fixed-size recipient chunks sent together over one
//     connection acquisition, with per-chunk failure isolation.
//   - Retry: bounded re-attempts of previously failed sends with a delay
//     between rounds.
//
// SendTransactional maps business events (welcome, password reset, account
// verification) to their templates and delegates to Send.
//
// # Usage
//
//	var cfg mailer.Config
//	config.MustLoad(&cfg)
//
//	smtp, err := transport.NewSMTP(smtpCfg)
//	if err != nil {
//	    // handle error
//	}
//
//	svc, err := mailer.New(cfg, smtp, templates.New(os.DirFS("assets")))
//	if err != nil {
//	    // handle error
//	}
//	defer svc.Close()
//
//	ok, err := svc.Send(ctx, mailer.SendParams{
//	    Subject:    "Welcome!",
//	    Template:   "welcome_email",
//	    Context:    map[string]any{"username": "alice"},
//	    Recipients: []string{"alice@example.com"},
//	})
//
// # Error handling
//
// Delivery failures never interrupt a batch or parallel operation: they are
// logged with subject, template and recipient-count fields and folded into
// the returned counts. Errors that indicate misuse fail loud instead:
// exceeding the recipient limit (ErrTooManyRecipients), unresolvable
// templates (templates.ErrTemplateNotFound) and connection establishment
// failures (ErrConnection) are returned to the caller.
//
// # Fire-and-forget sends
//
// An async Send hands the message to a background goroutine and returns true
// immediately; the outcome is observable only through logs, correlated by a
// dispatch id. Wait blocks until all outstanding async sends finish, which is
// the synchronization point tests and shutdown paths need.
package mailer
